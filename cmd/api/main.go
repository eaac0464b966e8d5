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
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"hoagiemeal/internal/common"
	"hoagiemeal/internal/dining"
	"hoagiemeal/internal/env"
	"hoagiemeal/internal/schedule"
	"hoagiemeal/internal/upstream"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg, err := env.Load()
	if err != nil {
		log.Fatal(err)
	}
	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Upstream dining API client
	var client upstream.Client
	creds := upstream.Credentials{
		ClientID:     cfg.ConsumerKey,
		ClientSecret: cfg.ConsumerSecret,
		TokenURL:     cfg.TokenURL,
	}
	if creds.Enabled() {
		log.Println("Using client credentials for the upstream dining API")
		client = upstream.NewAuthenticatedHTTPClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, creds)
	} else {
		client = upstream.NewHTTPClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	}

	// Optional response cache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		store := upstream.NewRedisStore(redisClient)
		if err := store.Ping(ctx); err != nil {
			log.Printf("Warning: Redis unreachable at %s, responses will not be cached: %v", cfg.RedisAddr, err)
		} else {
			log.Printf("Caching upstream responses in Redis at %s", cfg.RedisAddr)
			client = upstream.NewCachingClient(client, store, dining.CacheTTLs())
		}
	}

	diningHandler := dining.NewHandler(client, schedule.CampusClock(cfg.CampusLocation), cfg.Production)

	router := gin.Default()
	router.Use(common.RequestID())

	// Global routes
	api := router.Group("/api")
	common.RegisterRoutes(api)
	dining.RegisterRoutes(api, diningHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Listening on %s (upstream %s)", srv.Addr, cfg.UpstreamBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
