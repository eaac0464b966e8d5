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
package common

import (
	"net/http"
	"runtime/debug"
)

// Structs for the API response format

type SuccessResponse struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

// Response functions

func CreateSuccessResponse(data interface{}, message string) SuccessResponse {
	return SuccessResponse{
		Data:    data,
		Message: message,
		Status:  http.StatusOK,
	}
}

func CreateErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// CreateServerErrorResponse builds the body for a failed request. Outside of
// production the cause and the current stack are included for debugging.
func CreateServerErrorResponse(msg string, cause error, production bool) ErrorResponse {
	if production || cause == nil {
		return ErrorResponse{
			Error:   msg,
			Message: "An unexpected error occurred",
		}
	}
	return ErrorResponse{
		Error:   msg,
		Message: cause.Error(),
		Details: string(debug.Stack()),
	}
}
