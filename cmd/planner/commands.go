package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/trip-planner/travel-planner/internal/adapter/text"
	"github.com/trip-planner/travel-planner/internal/usecase"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a trip preferences file and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := a.loadPreferences()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text.RenderTripPreferences(prefs))
			return err
		},
	}
}

func newAttractionsCmd(a *app) *cobra.Command {
	var (
		maxResults int
		categories []string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "attractions",
		Short: "Search for attractions at the trip destination",
		Long: `Attractions validates the preferences file, searches travel sites for
attractions at the destination and prints them grouped by category, most
popular first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkMaxResults(maxResults); err != nil {
				return err
			}
			prefs, err := a.loadPreferences()
			if err != nil {
				return err
			}
			client, err := a.searchClient()
			if err != nil {
				return err
			}

			uc := usecase.NewAttractionSearchUseCase(client,
				usecase.WithLogger(a.log.WithSearch("attractions").Logger))
			resp, err := uc.Search(cmd.Context(), prefs, usecase.AttractionSearchOptions{
				MaxResults: maxResults,
				Categories: categories,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text.RenderAttractions(resp.Attractions))
			return err
		},
	}

	cmd.Flags().IntVar(&maxResults, "max-results", usecase.DefaultMaxAttractions, "maximum number of attractions to return")
	cmd.Flags().StringArrayVar(&categories, "category", nil, "extra category to search for (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output results as JSON")
	return cmd
}

func newHotelsCmd(a *app) *cobra.Command {
	var (
		maxResults int
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "hotels",
		Short: "Search for hotels matching the trip budget and style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkMaxResults(maxResults); err != nil {
				return err
			}
			prefs, err := a.loadPreferences()
			if err != nil {
				return err
			}
			client, err := a.searchClient()
			if err != nil {
				return err
			}

			uc := usecase.NewHotelSearchUseCase(client,
				usecase.WithLogger(a.log.WithSearch("hotels").Logger))
			resp, err := uc.Search(cmd.Context(), prefs, usecase.HotelSearchOptions{MaxResults: maxResults})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text.RenderHotels(resp.Hotels))
			return err
		},
	}

	cmd.Flags().IntVar(&maxResults, "max-results", usecase.DefaultMaxHotels, "maximum number of hotels to return")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output results as JSON")
	return cmd
}

func checkMaxResults(n int) error {
	if n < 1 || n > usecase.MaxResultsLimit {
		return fmt.Errorf("--max-results must be between 1 and %d, got %d", usecase.MaxResultsLimit, n)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
