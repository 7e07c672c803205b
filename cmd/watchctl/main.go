// watchctl is a terminal client for a watchlog server. It drives the same
// HTTP API the web client uses.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/watchloghq/watchlog/pkg/mediaclient"
)

const defaultBaseURL = "http://localhost:8080"

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	baseURL := os.Getenv("WATCHLOG_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := mediaclient.New(baseURL)
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(ctx, client, os.Args[2:])
	case "add":
		err = runAdd(ctx, client, os.Args[2:])
	case "edit":
		err = runEdit(ctx, client, os.Args[2:])
	case "delete":
		err = runDelete(ctx, client, os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintln(os.Stderr, "unknown command:", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "watchctl:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: watchctl <command> [flags]

commands:
  list     show tracked records
  add      add a record
  edit     update fields of a record
  delete   remove a record

Set WATCHLOG_API_URL to point at a server (default http://localhost:8080).
Run "watchctl <command> -h" for command flags.`)
}

func runList(ctx context.Context, client *mediaclient.Client, args []string) error {
	flags := flag.NewFlagSet("list", flag.ExitOnError)
	search := flags.String("search", "", "filter by title, director, or location")
	mediaType := flags.String("type", mediaclient.TypeFilterAll, "filter by type: MOVIE, TV_SHOW, or all")
	limit := flags.Int("limit", 20, "page size")
	all := flags.Bool("all", false, "fetch every page, not just the first")
	flags.Parse(args)

	pager := mediaclient.NewPager(client, *limit)
	if err := pager.LoadMore(ctx); err != nil {
		return err
	}
	for *all && pager.HasNext() {
		if err := pager.LoadMore(ctx); err != nil {
			return err
		}
	}

	records := mediaclient.Filter(pager.Items(), *search, *mediaType)
	printTable(records)

	shown := int64(len(records))
	if total := pager.Total(); total > shown {
		fmt.Printf("showing %d of %d records\n", shown, total)
	}
	return nil
}

func runAdd(ctx context.Context, client *mediaclient.Client, args []string) error {
	flags := flag.NewFlagSet("add", flag.ExitOnError)
	title := flags.String("title", "", "title (required)")
	mediaType := flags.String("type", "MOVIE", "MOVIE or TV_SHOW")
	director := flags.String("director", "", "director (required)")
	budget := flags.Float64("budget", 0, "budget amount")
	budgetLabel := flags.String("budget-label", "", "budget unit, e.g. Million")
	location := flags.String("location", "", "filming location")
	duration := flags.Int("duration", 0, "duration in minutes")
	year := flags.String("year", "", "release year")
	notes := flags.String("notes", "", "free-form notes")
	posterURL := flags.String("poster", "", "poster image URL")
	flags.Parse(args)

	req := mediaclient.CreateMediaRequest{
		Title:       *title,
		Type:        strings.ToUpper(*mediaType),
		Director:    *director,
		Budget:      optFloat(flags, "budget", *budget),
		BudgetLabel: optString(*budgetLabel),
		Location:    optString(*location),
		DurationMin: optInt(flags, "duration", *duration),
		Year:        optString(*year),
		Notes:       optString(*notes),
		PosterURL:   optString(*posterURL),
	}

	record, err := client.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("added #%d %q\n", record.ID, record.Title)
	return nil
}

func runEdit(ctx context.Context, client *mediaclient.Client, args []string) error {
	flags := flag.NewFlagSet("edit", flag.ExitOnError)
	id := flags.Int64("id", 0, "record id (required)")
	title := flags.String("title", "", "new title")
	mediaType := flags.String("type", "", "new type: MOVIE or TV_SHOW")
	director := flags.String("director", "", "new director")
	budget := flags.Float64("budget", 0, "new budget amount")
	budgetLabel := flags.String("budget-label", "", "new budget unit")
	location := flags.String("location", "", "new filming location")
	duration := flags.Int("duration", 0, "new duration in minutes")
	year := flags.String("year", "", "new release year")
	notes := flags.String("notes", "", "new notes")
	posterURL := flags.String("poster", "", "new poster URL")
	flags.Parse(args)

	if *id == 0 {
		return fmt.Errorf("missing -id")
	}

	// Only flags the user actually passed become part of the update.
	req := mediaclient.UpdateMediaRequest{}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			req.Title = title
		case "type":
			upper := strings.ToUpper(*mediaType)
			req.Type = &upper
		case "director":
			req.Director = director
		case "budget":
			req.Budget = budget
		case "budget-label":
			req.BudgetLabel = budgetLabel
		case "location":
			req.Location = location
		case "duration":
			req.DurationMin = duration
		case "year":
			req.Year = year
		case "notes":
			req.Notes = notes
		case "poster":
			req.PosterURL = posterURL
		}
	})

	record, err := client.Update(ctx, *id, req)
	if err != nil {
		return err
	}
	fmt.Printf("updated #%d %q\n", record.ID, record.Title)
	return nil
}

func runDelete(ctx context.Context, client *mediaclient.Client, args []string) error {
	flags := flag.NewFlagSet("delete", flag.ExitOnError)
	id := flags.Int64("id", 0, "record id (required)")
	yes := flags.Bool("yes", false, "skip the confirmation prompt")
	flags.Parse(args)

	if *id == 0 {
		return fmt.Errorf("missing -id")
	}

	if !*yes {
		title, err := findTitle(ctx, client, *id)
		if err != nil {
			return err
		}
		fmt.Printf("Delete %q? [y/N] ", title)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("aborted")
			return nil
		}
	}

	if err := client.Delete(ctx, *id); err != nil {
		if mediaclient.IsNotFound(err) {
			return fmt.Errorf("record #%d not found", *id)
		}
		return err
	}
	fmt.Printf("deleted #%d\n", *id)
	return nil
}

// findTitle resolves a record's title for the confirmation prompt. The API
// has no single-record read, so it walks the paged list.
func findTitle(ctx context.Context, client *mediaclient.Client, id int64) (string, error) {
	pager := mediaclient.NewPager(client, 100)
	for {
		if err := pager.LoadMore(ctx); err != nil {
			return "", err
		}
		for _, record := range pager.Items() {
			if record.ID == id {
				return record.Title, nil
			}
		}
		if !pager.HasNext() {
			return "", fmt.Errorf("record #%d not found", id)
		}
	}
}

func printTable(records []mediaclient.Media) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTYPE\tDIRECTOR\tYEAR\tDURATION\tBUDGET")
	for _, record := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			record.ID,
			record.Title,
			displayType(record.Type),
			record.Director,
			orDash(record.Year),
			mediaclient.DurationSummary(record),
			mediaclient.BudgetSummary(record),
		)
	}
	w.Flush()
}

func displayType(mediaType string) string {
	switch mediaType {
	case "MOVIE":
		return "Movie"
	case "TV_SHOW":
		return "TV Show"
	default:
		return mediaType
	}
}

func orDash(value *string) string {
	if value == nil || *value == "" {
		return "-"
	}
	return *value
}

func optString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func optFloat(flags *flag.FlagSet, name string, value float64) *float64 {
	if !flagPassed(flags, name) {
		return nil
	}
	return &value
}

func optInt(flags *flag.FlagSet, name string, value int) *int {
	if !flagPassed(flags, name) {
		return nil
	}
	return &value
}

func flagPassed(flags *flag.FlagSet, name string) bool {
	passed := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}
