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
	"fmt"
	"log"
	"net/http"

	"hoagiemeal/internal/casing"
	"hoagiemeal/internal/common"
	"hoagiemeal/internal/schedule"
	"hoagiemeal/internal/upstream"

	"github.com/gin-gonic/gin"
)

// Handler proxies dining requests to the upstream API
type Handler struct {
	client     upstream.Client
	now        schedule.Clock
	production bool
}

func NewHandler(client upstream.Client, now schedule.Clock, production bool) *Handler {
	return &Handler{client: client, now: now, production: production}
}

func (h *Handler) GetLocations(c *gin.Context) {
	h.fetch(c, locationsResource, map[string]string{
		"category_id": diningCategoryID,
		"fmt":         "xml",
	})
}

func (h *Handler) GetEvents(c *gin.Context) {
	placeID := c.Query("placeId")
	if placeID == "" {
		placeID = DefaultPlaceID
	}
	h.fetch(c, eventsResource, map[string]string{"place_id": placeID})
}

func (h *Handler) GetMenu(c *gin.Context) {
	locationID := c.Query("locationId")
	if locationID == "" {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse("locationId is required"))
		return
	}
	menuID := c.Query("menuId")
	if menuID == "" {
		menuID = schedule.CurrentMenuID(h.now)
	}
	h.fetch(c, menuResource, map[string]string{
		"location_id": locationID,
		"menu_id":     menuID,
	})
}

// fetch makes the single upstream call for res and writes the response.
func (h *Handler) fetch(c *gin.Context, res resource, args map[string]string) {
	defer func() {
		if r := recover(); r != nil {
			h.respondError(c, res, fmt.Errorf("panic: %v", r))
		}
	}()

	result, err := h.client.Get(c.Request.Context(), res.Path, args)
	if err != nil {
		h.respondError(c, res, err)
		return
	}
	if result.Empty() {
		c.JSON(http.StatusNotFound, common.CreateErrorResponse(res.NotFound))
		return
	}

	c.JSON(http.StatusOK, common.CreateSuccessResponse(casing.CamelizeKeys(result.Data), res.Success))
}

// respondError is the one place a failed request is logged and answered.
func (h *Handler) respondError(c *gin.Context, res resource, err error) {
	log.Printf("Error fetching %s (request %s): %v", res.Path, common.GetRequestID(c), err)

	status := http.StatusInternalServerError
	if code, ok := upstream.StatusCode(err); ok {
		status = code
	}
	c.JSON(status, common.CreateServerErrorResponse(res.Failure, err, h.production))
}
