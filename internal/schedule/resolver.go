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
	"time"
)

// Clock supplies the current time.
type Clock func() time.Time

// CampusClock returns a Clock reading the wall clock in loc.
func CampusClock(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

func isWeekend(t time.Time) bool {
	day := t.Weekday()
	return day == time.Saturday || day == time.Sunday
}

func scheduleFor(t time.Time) []TimeRange {
	if isWeekend(t) {
		return weekendSchedule[:]
	}
	return weekdaySchedule[:]
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ResolveNextMeal returns the first meal of now's day whose window has not
// ended yet. A time before a window opens still resolves to that window.
// Once the last window has closed, the first meal of the following day is
// returned.
func ResolveNextMeal(now time.Time) ResolvedMeal {
	current := clock(now.Hour(), now.Minute())
	for _, period := range scheduleFor(now) {
		if current < period.End {
			return ResolvedMeal{Date: startOfDay(now), Meal: period.Meal}
		}
	}

	y, m, d := now.Date()
	next := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	return ResolvedMeal{Date: next, Meal: scheduleFor(next)[0].Meal}
}

// FormatMenuID builds the upstream menu id, e.g. 2024-11-07-Dinner.
func FormatMenuID(date time.Time, meal MealKind) string {
	return fmt.Sprintf("%04d-%02d-%02d-%s", date.Year(), int(date.Month()), date.Day(), meal)
}

// CurrentMenuID resolves the menu id for the time reported by now.
func CurrentMenuID(now Clock) string {
	return ResolveNextMeal(now()).MenuID()
}
