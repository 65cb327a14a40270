package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var searchJobsCmd = &cobra.Command{
	Use:   "search-jobs",
	Short: "Search the job catalog",
	Long:  "List postings whose title, company, description or requirements contain the query.",
	RunE:  runSearchJobs,
}

var listIndustriesCmd = &cobra.Command{
	Use:   "list-industries",
	Short: "List the industries in the job catalog",
	RunE:  runListIndustries,
}

var jobsByIndustryCmd = &cobra.Command{
	Use:   "jobs-by-industry",
	Short: "List postings in an industry",
	RunE:  runJobsByIndustry,
}

var getJobCmd = &cobra.Command{
	Use:   "get-job",
	Short: "Show one posting by catalog ID",
	RunE:  runGetJob,
}

var (
	searchQuery     string
	searchLimit     int
	industryName    string
	jobID           int
	jobsJSON        bool
	jobsCatalog     catalogFlags
	catalogCommands = []*cobra.Command{searchJobsCmd, listIndustriesCmd, jobsByIndustryCmd, getJobCmd}
)

func init() {
	searchJobsCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Case-insensitive search text (empty lists all)")
	searchJobsCmd.Flags().IntVar(&searchLimit, "limit", catalog.DefaultSearchLimit, "Maximum number of results")

	jobsByIndustryCmd.Flags().StringVar(&industryName, "industry", "", "Industry name (required)")
	_ = jobsByIndustryCmd.MarkFlagRequired("industry")

	getJobCmd.Flags().IntVar(&jobID, "id", 0, "Catalog ID of the posting (required)")
	_ = getJobCmd.MarkFlagRequired("id")

	for _, cmd := range catalogCommands {
		cmd.Flags().BoolVar(&jobsJSON, "json", false, "Print results as JSON")
		jobsCatalog.register(cmd)
		rootCmd.AddCommand(cmd)
	}
}

func runSearchJobs(cmd *cobra.Command, _ []string) error {
	c, err := loadCatalog(cmd.Context(), jobsCatalog)
	if err != nil {
		return err
	}
	return printListings(cmd, c.Search(searchQuery, searchLimit))
}

func runJobsByIndustry(cmd *cobra.Command, _ []string) error {
	c, err := loadCatalog(cmd.Context(), jobsCatalog)
	if err != nil {
		return err
	}
	return printListings(cmd, c.FilterByIndustry(industryName))
}

func printListings(cmd *cobra.Command, listings []catalog.Listing) error {
	if jobsJSON {
		return writeJSON(cmd.OutOrStdout(), "", listings)
	}
	return observability.NewPrinter(cmd.OutOrStdout()).PrintListings(listings)
}

func runListIndustries(cmd *cobra.Command, _ []string) error {
	c, err := loadCatalog(cmd.Context(), jobsCatalog)
	if err != nil {
		return err
	}

	industries := c.Industries()
	if jobsJSON {
		return writeJSON(cmd.OutOrStdout(), "", industries)
	}
	for _, industry := range industries {
		fmt.Fprintln(cmd.OutOrStdout(), industry)
	}
	return nil
}

func runGetJob(cmd *cobra.Command, _ []string) error {
	c, err := loadCatalog(cmd.Context(), jobsCatalog)
	if err != nil {
		return err
	}

	posting, ok := c.Get(jobID)
	if !ok {
		return fmt.Errorf("job %d not found (catalog has %d postings)", jobID, c.Len())
	}

	if jobsJSON {
		return writeJSON(cmd.OutOrStdout(), "", catalog.Listing{ID: jobID, JobPosting: posting})
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintPosting(jobID, posting)
	return nil
}
