package main

import (
	"context"
	"fmt"
	"log"

	"tm-discovery/api/discovery"
	"tm-discovery/config"
	"tm-discovery/di"
	"tm-discovery/util"
)

func searchEventsDemo(ctx context.Context, client discovery.DiscoveryAPI) {
	log.Println("Running: searchEventsDemo")
	resp, err := client.SearchEvents(ctx, discovery.EventFilter{
		ClassificationName: "music",
		StateCode:          "GA",
		Size:               20,
	})
	if err != nil {
		log.Println("Error while searching events:", err)
		return
	}

	util.PrintPagePartially(resp.FirstPage())
	for _, event := range resp.FirstPage().Events {
		util.PrintEventPartially(&event)
	}

	// Flatten a bounded number of pages; All() could burn a lot of
	// the daily quota on broad searches.
	entities, err := resp.Limit(ctx, config.DEFAULT_PAGE_LIMIT)
	if err != nil {
		log.Println("Pagination stopped early:", err)
	}
	fmt.Printf("Collected %d events across pages\n", len(entities))
}

func searchVenuesDemo(ctx context.Context, client discovery.DiscoveryAPI) {
	log.Println("Running: searchVenuesDemo")
	resp, err := client.VenuesByName(ctx, "Tabernacle", "GA")
	if err != nil {
		log.Println("Error while searching venues:", err)
		return
	}

	venues := resp.FirstPage().Venues
	for _, v := range venues {
		fmt.Println(v.String())
	}

	if err := util.PlotVenueMap(venues, "venue_map.html"); err != nil {
		log.Println("Error plotting venues:", err)
	}
}

func classificationDemo(ctx context.Context, client discovery.DiscoveryAPI) {
	log.Println("Running: classificationDemo")
	resp, err := client.SearchClassifications(ctx, discovery.ClassificationFilter{Keyword: "jazz"})
	if err != nil {
		log.Println("Error while searching classifications:", err)
		return
	}

	for _, cl := range resp.FirstPage().Classifications {
		if cl.Segment == nil {
			continue
		}
		fmt.Printf("Segment: %s\n", name(cl.Segment.Name))
		for _, genre := range cl.Segment.Genres {
			fmt.Printf("  Genre: %s\n", name(genre.Name))
			for _, sub := range genre.Subgenres {
				fmt.Printf("    Subgenre: %s\n", name(sub.Name))
			}
		}
	}
}

func name(s *string) string {
	if s == nil {
		return "(unnamed)"
	}
	return *s
}

func main() {
	container := di.NewContainer("prod")
	ctx := context.Background()

	searchEventsDemo(ctx, container.DiscoveryAPI)
	searchVenuesDemo(ctx, container.DiscoveryAPI)
	classificationDemo(ctx, container.DiscoveryAPI)
}
