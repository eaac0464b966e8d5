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

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hoagiemeal/internal/common"
	"hoagiemeal/internal/upstream"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient records upstream calls and replays a canned result.
type mockClient struct {
	calls []mockCall
	res   *upstream.Response
	err   error
	panic bool
}

type mockCall struct {
	path string
	args map[string]string
}

func (m *mockClient) Get(ctx context.Context, path string, args map[string]string) (*upstream.Response, error) {
	m.calls = append(m.calls, mockCall{path: path, args: args})
	if m.panic {
		panic("decoder exploded")
	}
	return m.res, m.err
}

// Thursday 2024-11-07 18:00, during dinner.
func fixedClock() time.Time {
	return time.Date(2024, 11, 7, 18, 0, 0, 0, time.UTC)
}

func newTestRouter(client upstream.Client, production bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(common.RequestID())
	RegisterRoutes(router.Group("/api"), NewHandler(client, fixedClock, production))
	return router
}

func serve(router *gin.Engine, target string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var body map[string]any
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	return rr, body
}

func list(items ...any) *upstream.Response {
	return &upstream.Response{Data: items}
}

func TestGetLocations(t *testing.T) {
	client := &mockClient{res: list(map[string]any{
		"name":     "Whitman College",
		"map_name": "Whitman",
		"geo_loc":  map[string]any{"lat": "40.344", "long": "-74.658"},
		"building": map[string]any{"location_id": "5", "building_name": "Whitman"},
	})}
	router := newTestRouter(client, false)

	rr, body := serve(router, "/api/dining/location")

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, client.calls, 1)
	assert.Equal(t, LocationsPath, client.calls[0].path)
	assert.Equal(t, map[string]string{"category_id": "2", "fmt": "xml"}, client.calls[0].args)

	assert.Equal(t, "Successfully fetched dining locations", body["message"])
	assert.Equal(t, float64(200), body["status"])
	data := body["data"].([]any)
	require.Len(t, data, 1)
	location := data[0].(map[string]any)
	assert.Equal(t, "Whitman", location["mapName"])
	assert.Contains(t, location, "geoLoc")
	assert.Equal(t, map[string]any{"locationId": "5", "buildingName": "Whitman"}, location["building"])
	assert.NotContains(t, rr.Body.String(), "_")
}

func TestGetEvents_DefaultPlace(t *testing.T) {
	client := &mockClient{res: list(map[string]any{"summary": "Brunch", "uid": "abc"})}
	router := newTestRouter(client, false)

	rr, _ := serve(router, "/api/dining/events")

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, client.calls, 1)
	assert.Equal(t, EventsPath, client.calls[0].path)
	assert.Equal(t, map[string]string{"place_id": "1007"}, client.calls[0].args)
}

func TestGetEvents_PlaceParam(t *testing.T) {
	client := &mockClient{res: list(map[string]any{"summary": "Dinner"})}
	router := newTestRouter(client, false)

	rr, body := serve(router, "/api/dining/events?placeId=42")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]string{"place_id": "42"}, client.calls[0].args)
	assert.Equal(t, "Successfully fetched dining events", body["message"])
}

func TestGetMenu(t *testing.T) {
	client := &mockClient{res: list(map[string]any{"id": "590012", "name": "Pasta", "nutrient_info": map[string]any{"serving_size": "1 cup"}})}
	router := newTestRouter(client, false)

	rr, body := serve(router, "/api/dining/menu?locationId=1088&menuId=2024-11-18-Lunch")

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, client.calls, 1)
	assert.Equal(t, MenuPath, client.calls[0].path)
	assert.Equal(t, map[string]string{"location_id": "1088", "menu_id": "2024-11-18-Lunch"}, client.calls[0].args)
	item := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{"servingSize": "1 cup"}, item["nutrientInfo"])
}

func TestGetMenu_DefaultMenuID(t *testing.T) {
	client := &mockClient{res: list(map[string]any{"id": "1"})}
	router := newTestRouter(client, false)

	rr, _ := serve(router, "/api/dining/menu?locationId=1088")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2024-11-07-Dinner", client.calls[0].args["menu_id"])
}

func TestGetMenu_MissingLocation(t *testing.T) {
	for _, target := range []string{"/api/dining/menu", "/api/dining/menu?locationId=", "/api/dining/menu?menuId=2024-11-07-Dinner"} {
		t.Run(target, func(t *testing.T) {
			client := &mockClient{res: list("unused")}
			router := newTestRouter(client, false)

			rr, body := serve(router, target)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "locationId is required", body["error"])
			assert.Empty(t, client.calls)
		})
	}
}

func TestEmptyUpstreamIsNotFound(t *testing.T) {
	tests := []struct {
		target  string
		res     *upstream.Response
		message string
	}{
		{"/api/dining/location", list(), "No dining locations found"},
		{"/api/dining/events", &upstream.Response{}, "No dining events found"},
		{"/api/dining/menu?locationId=1088", &upstream.Response{Data: map[string]any{}}, "No menu found for this location"},
		{"/api/dining/menu?locationId=1088", nil, "No menu found for this location"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			client := &mockClient{res: tt.res}
			router := newTestRouter(client, false)

			rr, body := serve(router, tt.target)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, map[string]any{"error": tt.message}, body)
			assert.Len(t, client.calls, 1)
		})
	}
}

func TestUpstreamStatusError(t *testing.T) {
	targets := map[string]string{
		"/api/dining/location":             "Failed to fetch dining locations",
		"/api/dining/events":               "Failed to fetch dining events",
		"/api/dining/menu?locationId=1088": "Failed to fetch menu",
	}

	for _, production := range []bool{false, true} {
		for target, failure := range targets {
			t.Run(fmt.Sprintf("%s production=%t", target, production), func(t *testing.T) {
				wrapped := fmt.Errorf("fetch: %w", &upstream.StatusError{StatusCode: http.StatusServiceUnavailable, Path: "/x"})
				client := &mockClient{err: wrapped}
				router := newTestRouter(client, production)

				rr, body := serve(router, target)

				assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
				assert.Equal(t, failure, body["error"])
				assert.NotEmpty(t, body["message"])
				if production {
					assert.NotContains(t, body, "details")
					assert.Equal(t, "An unexpected error occurred", body["message"])
				} else {
					assert.Contains(t, body, "details")
					assert.Equal(t, wrapped.Error(), body["message"])
				}
			})
		}
	}
}

func TestUpstreamPlainErrorIs500(t *testing.T) {
	client := &mockClient{err: errors.New("dial tcp 127.0.0.1:8000: connection refused")}
	router := newTestRouter(client, true)

	rr, body := serve(router, "/api/dining/events")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Failed to fetch dining events", body["error"])
	assert.NotContains(t, rr.Body.String(), "connection refused")
}

func TestPanicIsAnsweredAsServerError(t *testing.T) {
	client := &mockClient{panic: true}
	router := newTestRouter(client, false)

	rr, body := serve(router, "/api/dining/location")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "panic: decoder exploded", body["message"])
}

func TestScalarPayloadPassesThrough(t *testing.T) {
	client := &mockClient{res: &upstream.Response{Data: "closed_today"}}
	router := newTestRouter(client, false)

	rr, body := serve(router, "/api/dining/events")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "closed_today", body["data"])
}

func TestRoutes(t *testing.T) {
	router := newTestRouter(&mockClient{res: list("x")}, false)

	tests := []struct {
		method     string
		path       string
		statusCode int
	}{
		{http.MethodGet, "/api/dining/location", http.StatusOK},
		{http.MethodGet, "/api/dining/events", http.StatusOK},
		{http.MethodGet, "/api/dining/menu?locationId=1", http.StatusOK},
		{http.MethodGet, "/api/dining/locations", http.StatusNotFound},
		{http.MethodPost, "/api/dining/menu", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.statusCode, rr.Code)
		})
	}
}

func TestCacheTTLs(t *testing.T) {
	ttls := CacheTTLs()
	assert.Equal(t, 15*time.Minute, ttls[LocationsPath])
	assert.Equal(t, 5*time.Minute, ttls[EventsPath])
	assert.Equal(t, 5*time.Minute, ttls[MenuPath])
}

func TestGetLocations_MixedKeyCasings(t *testing.T) {
	client := &mockClient{res: list(map[string]any{
		"BuildingName": "Whitman",
		"LocationID":   "5",
		"MAP_NAME":     "Whitman College",
	})}
	router := newTestRouter(client, false)

	rr, body := serve(router, "/api/dining/location")

	require.Equal(t, http.StatusOK, rr.Code)
	location := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{"buildingName": "Whitman", "locationId": "5", "mapName": "Whitman College"}, location)
}
