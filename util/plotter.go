package util

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"tm-discovery/models"
)

// PlotVenueMap generates an HTML file rendering the venues on a world
// map. Coordinates arrive as fixed-precision strings from the API and
// are only converted to floats here, at the rendering edge.
func PlotVenueMap(venues []models.Venue, outputPath string) error {
	points := make([]opts.GeoData, 0, len(venues))
	for _, v := range venues {
		lat, lon, ok := v.Coordinates()
		if !ok {
			continue
		}
		latF, errLat := strconv.ParseFloat(lat, 64)
		lonF, errLon := strconv.ParseFloat(lon, 64)
		if errLat != nil || errLon != nil {
			continue
		}
		name := ""
		if v.Name != nil {
			name = *v.Name
		}
		points = append(points, opts.GeoData{Name: name, Value: []float64{lonF, latF}})
	}

	// Create a new Geo chart.
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Venue Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Venues", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	fmt.Printf("Venue map generated: %s\n", outputPath)
	return nil
}
