// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/resourcedir"
	"github.com/poiesic/resourcedir/search"
	"github.com/poiesic/resourcedir/sources"
)

func main() {
	app := &cli.App{
		Name:  "resourcedir",
		Usage: "Community resource directory search for Chicago",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB snapshot store directory",
				Value:   "./resourcedir_db",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML source configuration (built-in sources if omitted)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "search",
				Usage:  "Search a category with a free-text query",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "category",
						Usage:    "Category to search",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "zip",
						Usage: "Restrict to a ZIP code",
						Value: search.FilterAll,
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "Restrict to a spoken language",
						Value: search.FilterAll,
					},
					&cli.StringFlag{
						Name:  "service",
						Usage: "Restrict to a service tag",
						Value: search.FilterAll,
					},
					&cli.StringFlag{
						Name:  "day",
						Usage: "Restrict to records open on a day",
						Value: search.FilterAll,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Results per page",
						Value: 5,
					},
					&cli.IntFlag{
						Name:  "pages",
						Usage: "Number of result pages to print",
						Value: 1,
					},
				},
			},
			{
				Name:   "refresh",
				Usage:  "Re-fetch and re-parse category listings",
				Action: refreshCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "category",
						Usage: "Category to refresh (all categories if omitted)",
					},
				},
			},
			{
				Name:   "show",
				Usage:  "Dump a category's parsed records as JSON",
				Action: showCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "category",
						Usage:    "Category to dump",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDirectory(c *cli.Context) (*resourcedir.Directory, error) {
	opts := []resourcedir.DirectoryOption{}
	if configPath := c.String("config"); configPath != "" {
		cfg, err := sources.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, resourcedir.WithSourceConfig(cfg))
	}
	return resourcedir.NewDirectory(c.String("db"), opts...)
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("a query is required")
	}

	dir, err := openDirectory(c)
	if err != nil {
		return fmt.Errorf("failed to open directory: %w", err)
	}
	defer dir.Close()

	if suggestion, ok := dir.Suggest(query); ok {
		fmt.Printf("Did you mean %q? Searching for: %s\n\n", suggestion.Fix, suggestion.Corrected)
		query = suggestion.Corrected
	}

	filters := search.Filters{
		Zip:      c.String("zip"),
		Language: c.String("language"),
		Service:  c.String("service"),
		Day:      c.String("day"),
	}

	ctx := context.Background()
	session := dir.NewSession()
	category := c.String("category")
	limit := c.Int("limit")
	pages := c.Int("pages")
	if pages < 1 {
		pages = 1
	}

	shown := 0
	for page := 0; page < pages; page++ {
		q := query
		if page > 0 {
			q = "more"
		}
		results, intent, err := dir.Search(ctx, category, q, filters, session, limit)
		if err != nil {
			return err
		}
		if page == 0 && !intent.IsZero() {
			var signals []string
			if intent.Zip != "" {
				signals = append(signals, "zip "+intent.Zip)
			}
			if intent.Service != "" {
				signals = append(signals, "service "+intent.Service)
			}
			if intent.Day != "" {
				signals = append(signals, "day "+intent.Day)
			}
			if intent.Now {
				signals = append(signals, "open now")
			}
			fmt.Printf("Detected: %s\n\n", strings.Join(signals, ", "))
		}
		if len(results) == 0 {
			break
		}
		for _, sr := range results {
			shown++
			rec := sr.Record
			fmt.Printf("%d. %s [%0.3f]\n", shown, rec.Name, sr.Score)
			if rec.Address != "" {
				fmt.Printf("   %s\n", rec.Address)
			}
			if rec.Phone != "" {
				fmt.Printf("   %s\n", rec.Phone)
			}
			if rec.HoursText != "" {
				fmt.Printf("   Hours: %s\n", rec.HoursText)
			}
			if len(rec.AvailabilityBadges) > 0 {
				badges := make([]string, len(rec.AvailabilityBadges))
				for i, b := range rec.AvailabilityBadges {
					badges[i] = string(b)
				}
				fmt.Printf("   %s\n", strings.Join(badges, " | "))
			}
		}
	}

	if shown == 0 {
		fmt.Println("No matches found.")
	}
	return nil
}

func refreshCommand(c *cli.Context) error {
	dir, err := openDirectory(c)
	if err != nil {
		return fmt.Errorf("failed to open directory: %w", err)
	}
	defer dir.Close()

	ctx := context.Background()
	if category := c.String("category"); category != "" {
		snapshot, err := dir.Refresh(ctx, category)
		if err != nil {
			return fmt.Errorf("refresh failed: %w", err)
		}
		fmt.Printf("%s: %d records from %s\n", category, len(snapshot.Records), snapshot.Source)
		return nil
	}

	if err := dir.RefreshAll(ctx); err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}
	for _, name := range dir.Categories() {
		snapshot, err := dir.Snapshot(ctx, name)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d records from %s\n", name, len(snapshot.Records), snapshot.Source)
	}
	return nil
}

func showCommand(c *cli.Context) error {
	dir, err := openDirectory(c)
	if err != nil {
		return fmt.Errorf("failed to open directory: %w", err)
	}
	defer dir.Close()

	records, err := dir.Records(context.Background(), c.String("category"))
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
