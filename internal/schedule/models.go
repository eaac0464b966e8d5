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
package schedule

import (
	"fmt"
	"strings"
	"time"
)

// MealKind is the meal period name as the dining API spells it in menu ids.
type MealKind string

const (
	Breakfast MealKind = "Breakfast"
	Brunch    MealKind = "Brunch"
	Lunch     MealKind = "Lunch"
	Dinner    MealKind = "Dinner"
)

var mealKinds = []MealKind{Breakfast, Brunch, Lunch, Dinner}

func (m MealKind) String() string {
	return string(m)
}

// Valid reports whether m is one of the known meal periods.
func (m MealKind) Valid() bool {
	for _, k := range mealKinds {
		if m == k {
			return true
		}
	}
	return false
}

// ParseMealKind matches s against the meal periods ignoring case.
func ParseMealKind(s string) (MealKind, error) {
	for _, k := range mealKinds {
		if strings.EqualFold(strings.TrimSpace(s), string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown meal %q", s)
}

// TimeRange is a meal window in minutes since midnight.
type TimeRange struct {
	Start int
	End   int
	Meal  MealKind
}

func clock(hour, minute int) int {
	return hour*60 + minute
}

// Tables are ordered by Start and never overlap.
var (
	weekdaySchedule = [...]TimeRange{
		{Start: clock(7, 30), End: clock(10, 0), Meal: Breakfast},
		{Start: clock(11, 0), End: clock(14, 0), Meal: Lunch},
		{Start: clock(17, 0), End: clock(20, 0), Meal: Dinner},
	}
	weekendSchedule = [...]TimeRange{
		{Start: clock(10, 0), End: clock(14, 0), Meal: Brunch},
		{Start: clock(17, 0), End: clock(20, 0), Meal: Dinner},
	}
)

// WeekdaySchedule returns a copy of the Monday to Friday meal table.
func WeekdaySchedule() []TimeRange {
	out := weekdaySchedule
	return out[:]
}

// WeekendSchedule returns a copy of the Saturday and Sunday meal table.
func WeekendSchedule() []TimeRange {
	out := weekendSchedule
	return out[:]
}

// ResolvedMeal is the meal to show and the day it is served on.
type ResolvedMeal struct {
	Date time.Time
	Meal MealKind
}

func (r ResolvedMeal) MenuID() string {
	return FormatMenuID(r.Date, r.Meal)
}
