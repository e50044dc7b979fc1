package adminkit

import (
	"context"
	"fmt"
	"html/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DashboardTitle is the document title the dashboard is rendered with.
const DashboardTitle = "Dashboard - CF-CMS"

// DashboardData is everything the dashboard page displays.
type DashboardData struct {
	// User is the signed-in user. Optional.
	User *User `yaml:"user"`

	// Stats are the site's statistics. Without them, every count is
	// displayed as zero.
	Stats *DashboardStats `yaml:"stats"`

	Version   string     `yaml:"version"`
	MenuItems []MenuItem `yaml:"menu_items"`
}

// DashboardStats are the counts and recent history the dashboard summarizes.
type DashboardStats struct {
	Collections  int `yaml:"collections"`
	ContentItems int `yaml:"content_items"`
	MediaFiles   int `yaml:"media_files"`
	Users        int `yaml:"users"`

	// DatabaseSize and MediaSize are in bytes. Zero means unknown.
	DatabaseSize int64 `yaml:"database_size"`
	MediaSize    int64 `yaml:"media_size"`

	RecentActivity []Activity     `yaml:"recent_activity"`
	Analytics      *AnalyticsData `yaml:"analytics"`
}

// Activity is something that happened on the site.
type Activity struct {
	ID          string       `yaml:"id"`
	Type        ActivityType `yaml:"type"`
	Action      string       `yaml:"action"`
	Description string       `yaml:"description"`

	// Timestamp is displayed as-is.
	Timestamp string `yaml:"timestamp"`

	// User is the name of the user who did it.
	User string `yaml:"user"`
}

// AnalyticsData are the site's traffic totals and their weekly growth.
type AnalyticsData struct {
	PageViews        int          `yaml:"page_views"`
	UniqueVisitors   int          `yaml:"unique_visitors"`
	ContentPublished int          `yaml:"content_published"`
	MediaUploaded    int          `yaml:"media_uploaded"`
	WeeklyGrowth     WeeklyGrowth `yaml:"weekly_growth"`
}

// WeeklyGrowth is how much each analytics total grew over the past week.
type WeeklyGrowth struct {
	PageViews float64 `yaml:"page_views"`
	Visitors  float64 `yaml:"visitors"`
	Content   float64 `yaml:"content"`
	Media     float64 `yaml:"media"`
}

// Metric identifies one of the dashboard's metric cards.
type Metric int

const (
	MetricCollections Metric = iota
	MetricContentItems
	MetricMediaFiles
	MetricUsers
)

var metricNames = []string{"collections", "content_items", "media_files", "users"}

func (m Metric) String() string { return enumName(metricNames, m) }

// TrendSource decides the trend displayed on a metric card. Returning nil
// displays no trend.
type TrendSource func(Metric, DashboardStats) *Trend

// SampleTrends displays the same illustrative trends regardless of the
// statistics, for dashboards that have no history to compare against.
func SampleTrends(metric Metric, _ DashboardStats) *Trend {
	switch metric {
	case MetricCollections:
		return &Trend{Value: 12, Direction: TrendUp, Label: "from last week"}
	case MetricContentItems:
		return &Trend{Value: 5, Direction: TrendUp}
	case MetricMediaFiles:
		return &Trend{Value: 2, Direction: TrendDown, Label: "storage usage"}
	case MetricUsers:
		return &Trend{Value: 0, Direction: TrendNeutral}
	}
	return nil
}

// NoTrends displays no trends at all.
func NoTrends(Metric, DashboardStats) *Trend {
	return nil
}

// OverviewSource decides the data charted in the dashboard's weekly overview
// panel.
type OverviewSource func(DashboardStats) []DataPoint

// WeeklyGrowthOverview charts the weekly growth from the statistics'
// analytics, or nothing if there are no analytics.
func WeeklyGrowthOverview(stats DashboardStats) []DataPoint {
	if stats.Analytics == nil {
		return nil
	}
	growth := stats.Analytics.WeeklyGrowth
	return []DataPoint{
		{Label: "Views", Value: growth.PageViews, Tone: TonePrimary},
		{Label: "Visitors", Value: growth.Visitors, Tone: ToneSecondary},
		{Label: "Content", Value: growth.Content, Tone: ToneAccent},
		{Label: "Media", Value: growth.Media, Tone: ToneSuccess},
	}
}

// DefaultActions returns the dashboard's standard quick actions.
func DefaultActions() []Action {
	return []Action{
		{Label: "Create Content", Href: "/admin/content", Variant: ActionPrimary, Icon: IconEdit},
		{Label: "Upload Media", Href: "/admin/media", Variant: ActionSecondary, Icon: IconUpload},
		{Label: "Manage Users", Href: "/admin/users", Variant: ActionSecondary, Icon: IconUsers},
		{Label: "Settings", Href: "/admin/settings", Variant: ActionSecondary, Icon: IconSettings},
	}
}

// Dashboard composes the admin dashboard page out of the kit's widgets. The
// presentation choices that aren't driven by DashboardData are its fields.
type Dashboard struct {
	Trends   TrendSource
	Overview OverviewSource
	Actions  []Action
}

// NewDashboard returns a Dashboard using SampleTrends, WeeklyGrowthOverview,
// and DefaultActions.
func NewDashboard() Dashboard {
	return Dashboard{
		Trends:   SampleTrends,
		Overview: WeeklyGrowthOverview,
		Actions:  DefaultActions(),
	}
}

type dashboardView struct {
	widgetTemplate
	User     *User
	Updates  int
	Storage  []template.HTML
	Metrics  template.HTML
	Overview template.HTML
	Actions  template.HTML
	Activity template.HTML
}

// Content renders the dashboard's page content: a welcome banner, the metric
// grid, the weekly overview beside the quick actions, and the recent
// activity list, in that order.
func (d Dashboard) Content(ctx context.Context, data DashboardData) template.HTML {
	var stats DashboardStats
	if data.Stats != nil {
		stats = *data.Stats
	}
	trends := d.Trends
	if trends == nil {
		trends = NoTrends
	}
	overview := d.Overview
	if overview == nil {
		overview = WeeklyGrowthOverview
	}

	metric := func(m Metric, title string, value int, icon template.HTML) MetricCardProps {
		return MetricCardProps{Title: title, Value: value, Icon: icon, Trend: trends(m, stats)}
	}
	view := dashboardView{
		widgetTemplate: "dashboard",
		User:           data.User,
		Updates:        len(stats.RecentActivity),
		Metrics: RenderMetricGrid(ctx, MetricGridProps{
			Metrics: []MetricCardProps{
				metric(MetricCollections, "Collections", stats.Collections, IconCollections),
				metric(MetricContentItems, "Content Items", stats.ContentItems, IconContent),
				metric(MetricMediaFiles, "Media Files", stats.MediaFiles, IconMedia),
				metric(MetricUsers, "Users", stats.Users, IconUsers),
			},
		}),
		Overview: RenderAnalyticsPanel(ctx, AnalyticsPanelProps{
			Title:       "Weekly Overview",
			Description: "Performance metrics across your content and users",
			Data:        overview(stats),
			Type:        ChartBar,
			Height:      "250px",
			Class:       "h-full",
		}),
		Actions: RenderActionGrid(ctx, ActionGridProps{
			Actions: d.Actions,
			Columns: Columns2,
		}),
		Activity: RenderActivityList(ctx, ActivityListProps{
			Title:     "Recent Activity",
			Items:     activityItems(stats.RecentActivity),
			MaxHeight: "400px",
		}),
	}
	if stats.DatabaseSize > 0 {
		view.Storage = append(view.Storage, RenderBadge(ctx, BadgeProps{
			Label: "Database " + formatBytes(stats.DatabaseSize), Variant: BadgeNeutral, Rounded: true,
		}))
	}
	if stats.MediaSize > 0 {
		view.Storage = append(view.Storage, RenderBadge(ctx, BadgeProps{
			Label: "Media " + formatBytes(stats.MediaSize), Variant: BadgeNeutral, Rounded: true,
		}))
	}
	return renderWidget(ctx, view)
}

// Render renders the complete dashboard document through layout.
func (d Dashboard) Render(ctx context.Context, layout *Injector, data DashboardData) (string, error) {
	return layout.RenderLayout(ctx, LayoutData{
		Title:     DashboardTitle,
		Content:   d.Content(ctx, data),
		User:      data.User,
		Version:   data.Version,
		MenuItems: data.MenuItems,
	})
}

func activityItems(activities []Activity) []ActivityItem {
	// Casers are stateful, so each call gets its own.
	upper := cases.Upper(language.Und)
	items := make([]ActivityItem, 0, len(activities))
	for _, activity := range activities {
		user := ActivityUser{Name: activity.User}
		items = append(items, ActivityItem{
			ID: activity.ID,
			User: ActivityUser{
				Name:     activity.User,
				Initials: upper.String(user.Monogram()),
			},
			Action: activity.Action,
			Target: activity.Description,
			Time:   activity.Timestamp,
			Icon:   activityIcon(activity.Type),
		})
	}
	return items
}

func activityIcon(t ActivityType) template.HTML {
	switch t {
	case ActivityTypeContent:
		return smallIcon(IconContent)
	case ActivityTypeMedia:
		return smallIcon(IconMedia)
	case ActivityTypeUser:
		return smallIcon(IconUsers)
	}
	return IconInfo
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
