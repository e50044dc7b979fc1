package adminkit

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleMax(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		values []float64
		want   float64
	}{
		"empty":        {nil, 1},
		"all-zero":     {[]float64{0, 0}, 1},
		"all-negative": {[]float64{-5, -1}, 1},
		"mixed":        {[]float64{-5, 3, 2}, 3},
		"fractional":   {[]float64{0.25, 0.5}, 0.5},
		"infinite":     {[]float64{math.Inf(1), 3}, 1},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, test.want, scaleMax(test.values), 0)
		})
	}
}

func TestProportion(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		value, scale, floor float64
		want                float64
	}{
		"max":           {50, 50, 4, 100},
		"half":          {25, 50, 4, 50},
		"zero":          {0, 50, 4, 4},
		"negative":      {-10, 50, 1, 1},
		"below-floor":   {1, 50, 4, 4},
		"rounded":       {1, 3, 1, 33.33},
		"rounded-up":    {2, 3, 1, 66.67},
		"above-scale":   {80, 50, 4, 100},
		"nan":           {math.NaN(), 1, 4, 4},
		"list-floor":    {0.001, 1000, 1, 1},
		"fraction-only": {0.5, 1, 4, 50},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, test.want, proportion(test.value, test.scale, test.floor), 0)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "100", formatNumber(100))
	assert.Equal(t, "33.33", formatNumber(33.33))
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "-2.5", formatNumber(-2.5))
	assert.Equal(t, "1200000", formatNumber(1.2e6))
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := map[int64]string{
		0:               "0 B",
		1023:            "1023 B",
		1024:            "1.0 KB",
		1536:            "1.5 KB",
		5 * 1024 * 1024: "5.0 MB",
		3 << 30:         "3.0 GB",
		1<<40 + 1<<39:   "1.5 TB",
	}
	for n, want := range tests {
		assert.Equal(t, want, formatBytes(n), "formatBytes(%d)", n)
	}
}

func TestGridClass(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, "grid-4", gridClass(ctx, 0))
	assert.Equal(t, "grid-4", gridClass(ctx, Columns4))
	assert.Equal(t, "grid-3", gridClass(ctx, Columns3))
	assert.Equal(t, "grid-2", gridClass(ctx, Columns2))
	assert.Equal(t, "grid-2", gridClass(ctx, 6))
}

func TestSmallIcon(t *testing.T) {
	t.Parallel()

	small := smallIcon(IconMedia)
	assert.Contains(t, string(small), `class="icon icon-md"`)
	assert.NotContains(t, string(small), "icon-lg")
	assert.Equal(t, IconInfo, smallIcon(IconInfo))
}

func TestSlotName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "adminkit:head", slotName(HeadSlot))
	assert.Equal(t, "adminkit:body-end", slotName(BodyEndSlot))
}

func TestFindInjectionPoints(t *testing.T) {
	t.Parallel()

	doc := `<html><head>` + string(HeadSlot) + `<script src="/a.js"></script></head><body><p>é</p>` +
		string(BodyEndSlot) + `</body></html>`
	points := findInjectionPoints(doc, "/a.js")

	if assert.NotNil(t, points.headSlot) {
		assert.Equal(t, string(HeadSlot), doc[points.headSlot.start:points.headSlot.end])
	}
	if assert.NotNil(t, points.bodyEndSlot) {
		assert.Equal(t, string(BodyEndSlot), doc[points.bodyEndSlot.start:points.bodyEndSlot.end])
	}
	assert.Equal(t, `<script src="/a.js">`, doc[points.anchor:points.anchor+len(`<script src="/a.js">`)])
	assert.Equal(t, "</body>", doc[points.bodyEnd:points.bodyEnd+len("</body>")])

	points = findInjectionPoints("<p>plain</p>", "/a.js")
	assert.Nil(t, points.headSlot)
	assert.Nil(t, points.bodyEndSlot)
	assert.Equal(t, -1, points.anchor)
	assert.Equal(t, -1, points.bodyEnd)
}
