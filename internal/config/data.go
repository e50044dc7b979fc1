package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"impractical.co/adminkit"
)

// LoadDashboard reads the dashboard data in the YAML file at path. Fields the
// file sets that DashboardData doesn't have are an error.
func LoadDashboard(path string) (adminkit.DashboardData, error) {
	var data adminkit.DashboardData
	contents, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return data, fmt.Errorf("error reading dashboard data: %w", err)
	}
	data, err = DecodeDashboard(bytes.NewReader(contents))
	if err != nil {
		return data, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return data, nil
}

// DecodeDashboard decodes YAML dashboard data from r. An empty document is
// an empty DashboardData.
func DecodeDashboard(r io.Reader) (adminkit.DashboardData, error) {
	var data adminkit.DashboardData
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return adminkit.DashboardData{}, err
	}
	return data, nil
}
