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
package upstream

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Credentials are the consumer key and secret issued for the upstream API.
type Credentials struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
}

// Enabled reports whether every field needed for a token request is set.
func (c Credentials) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.TokenURL != ""
}

// NewAuthenticatedHTTPClient creates a client whose requests carry a bearer
// token obtained with the client credentials grant. Tokens are fetched
// lazily and refreshed when they expire.
func NewAuthenticatedHTTPClient(baseURL string, timeout time.Duration, creds Credentials) *HTTPClient {
	c := NewHTTPClient(baseURL, timeout)

	cfg := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     creds.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	// Token requests share the base client's timeout.
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: timeout})
	authed := cfg.Client(ctx)
	authed.Timeout = timeout
	c.HTTPClient = authed
	return c
}
