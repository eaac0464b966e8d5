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
package dining

import "time"

// Upstream endpoints
const (
	LocationsPath = "/api/dining/locations/"
	EventsPath    = "/api/dining/events/"
	MenuPath      = "/api/dining/menu/"
)

const (
	// DefaultPlaceID is the campus dining calendar.
	DefaultPlaceID = "1007"
	// diningCategoryID selects dining halls among all campus locations.
	diningCategoryID = "2"
)

// resource describes one proxied collection and the messages reported for it.
type resource struct {
	Path     string
	Success  string
	NotFound string
	Failure  string
}

var (
	locationsResource = resource{
		Path:     LocationsPath,
		Success:  "Successfully fetched dining locations",
		NotFound: "No dining locations found",
		Failure:  "Failed to fetch dining locations",
	}
	eventsResource = resource{
		Path:     EventsPath,
		Success:  "Successfully fetched dining events",
		NotFound: "No dining events found",
		Failure:  "Failed to fetch dining events",
	}
	menuResource = resource{
		Path:     MenuPath,
		Success:  "Successfully fetched menu",
		NotFound: "No menu found for this location",
		Failure:  "Failed to fetch menu",
	}
)

// CacheTTLs is how long each upstream collection may be served from cache.
func CacheTTLs() map[string]time.Duration {
	return map[string]time.Duration{
		LocationsPath: 15 * time.Minute,
		EventsPath:    5 * time.Minute,
		MenuPath:      5 * time.Minute,
	}
}
