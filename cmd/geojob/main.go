package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/joho/godotenv"
	"github.com/suparena/geoengine"
	"github.com/suparena/geoengine/catalog"
	"github.com/suparena/geoengine/client"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")

	collectionsFlag = flag.Bool("collections", false, "List raster data collections")
	jobsFlag        = flag.Bool("jobs", false, "List earth observation jobs")
	catalogFlag     = flag.String("catalog", "", "Load a collection catalog YAML file before running")
	regionFlag      = flag.String("region", "", "AWS region (defaults to AWS_REGION)")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := geoengine.GetVersionInfo()
		fmt.Printf("GeoEngine geojob version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	_ = godotenv.Load()

	if *catalogFlag != "" {
		if _, err := catalog.LoadCatalogFile(*catalogFlag); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load catalog: %v\n", err)
			os.Exit(1)
		}
		if !*collectionsFlag && !*jobsFlag {
			for _, name := range catalog.Names() {
				entry, _ := catalog.Lookup(name)
				fmt.Printf("%s\t%s\n", name, entry.ARN)
			}
			os.Exit(0)
		}
	}

	region := *regionFlag
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := client.New(ctx, client.WithRegion(region))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create client: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *collectionsFlag:
		listCollections(ctx, c)
	case *jobsFlag:
		listJobs(ctx, c)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func listCollections(ctx context.Context, c *client.Client) {
	collections, err := c.Imagery().ListCollections(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list collections: %v\n", err)
		os.Exit(1)
	}
	for _, col := range collections {
		fmt.Printf("%s\t%s\n", aws.ToString(col.Name), aws.ToString(col.Arn))
	}
}

func listJobs(ctx context.Context, c *client.Client) {
	summaries, err := c.Jobs().List().Latest().WithLimit(50).Execute(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list jobs: %v\n", err)
		os.Exit(1)
	}
	for _, s := range summaries {
		created := ""
		if s.CreationTime != nil {
			created = s.CreationTime.Format(time.RFC3339)
		}
		fmt.Printf("%s\t%s\t%s\t%s\n", aws.ToString(s.Name), s.Status, created, aws.ToString(s.Arn))
	}
}
