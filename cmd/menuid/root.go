//This project is the dining API for Hoagie Meal. Access to campus dining locations, events and menus as well as helper endpoints to integrate with our apps.
//API Copyright (C) 2025 Hoagie Club
//This program is free software: you can redistribute it and/or modify
//it under the terms of the GNU General Public License as published by
//the Free Software Foundation, either version 3 of the License, or
//(at your option) any later version.
//
//This program is distributed in the hope that it will be useful,
//but WITHOUT ANY WARRANTY; without even the implied warranty of
//MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//GNU General Public License for more details.
//
//You should have received a copy of the GNU General Public License
//along with this program.  If not, see <https://www.gnu.org/licenses/>.
package main

import (
	"fmt"
	"time"

	"hoagiemeal/internal/env"
	"hoagiemeal/internal/schedule"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
)

func newRootCmd(now func() time.Time) *cobra.Command {
	var (
		at       string
		timezone string
		date     string
		meal     string
	)

	root := &cobra.Command{
		Use:   "menuid",
		Short: "Print the dining menu id for the next meal",
		Long: "Print the id the dining API uses for a menu, e.g. 2024-11-07-Dinner.\n" +
			"Without flags the meal currently served, or the next one, on campus is used.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := campusLocation(timezone)
			if err != nil {
				return err
			}

			if date != "" || meal != "" {
				id, err := explicitMenuID(date, meal, loc)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			}

			t := now().In(loc)
			if at != "" {
				t, err = time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("--at: %w", err)
				}
				t = t.In(loc)
			}
			fmt.Fprintln(cmd.OutOrStdout(), schedule.ResolveNextMeal(t).MenuID())
			return nil
		},
	}

	root.Flags().StringVar(&at, "at", "", "resolve the meal for this RFC3339 time instead of now")
	root.Flags().StringVar(&timezone, "tz", "", "campus time zone (defaults to "+env.EnvCampusTimezone+")")
	root.Flags().StringVar(&date, "date", "", "menu date as YYYY-MM-DD, used with --meal")
	root.Flags().StringVar(&meal, "meal", "", "meal name (Breakfast, Brunch, Lunch or Dinner), used with --date")
	root.MarkFlagsRequiredTogether("date", "meal")
	root.MarkFlagsMutuallyExclusive("at", "date")

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "menuid %s (commit=%s)\n", Version, CommitSHA)
		},
	}
}

func campusLocation(name string) (*time.Location, error) {
	if name == "" {
		return env.LoadCampusLocation()
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("--tz: %w", err)
	}
	return loc, nil
}

func explicitMenuID(date, meal string, loc *time.Location) (string, error) {
	d, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return "", fmt.Errorf("--date: %w", err)
	}
	kind, err := schedule.ParseMealKind(meal)
	if err != nil {
		return "", fmt.Errorf("--meal: %w", err)
	}
	return schedule.FormatMenuID(d, kind), nil
}
