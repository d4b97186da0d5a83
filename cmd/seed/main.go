package main

import (
	"context"
	"time"

	"cruisevoyager/config"
	"cruisevoyager/infras/otel"
	"cruisevoyager/infras/postgres"
	cruiseModel "cruisevoyager/internal/domains/cruise/model"
	cruiseRepository "cruisevoyager/internal/domains/cruise/repository"
	reviewModel "cruisevoyager/internal/domains/review/model"
	reviewRepository "cruisevoyager/internal/domains/review/repository"
	userModel "cruisevoyager/internal/domains/user/model"
	userRepository "cruisevoyager/internal/domains/user/repository"
	"cruisevoyager/shared/logger"
	gModel "cruisevoyager/shared/model"
	"cruisevoyager/shared/password"
	"cruisevoyager/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const seedUsername = "demo"

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	db := postgres.New(cfg)
	otl := otel.New(cfg)

	ctx := context.Background()

	users := userRepository.New(cfg, db, otl)
	cruises := cruiseRepository.New(cfg, db, otl)
	reviews := reviewRepository.New(cfg, db, otl)

	exists, err := users.ExistByUsername(ctx, seedUsername)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to check seed user")
	}

	if exists {
		log.Info().Msg("Seed data already present, nothing to do")

		return
	}

	user := seedUser()
	if err := users.Insert(ctx, user); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed user")
	}

	catalog := seedCruises(user.ID)
	if err := cruises.InsertBulk(ctx, catalog); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed cruises")
	}

	for _, review := range seedReviews(user.ID, catalog) {
		if err := reviews.Insert(ctx, review); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed reviews")
		}
	}

	log.Info().
		Int("cruises", len(catalog)).
		Msg("Seed data inserted successfully")
}

func seedUser() userModel.User {
	hashed, err := password.Hash("password123")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash seed password")
	}

	id := uuid.NewString()

	return userModel.User{
		ID:            id,
		Username:      seedUsername,
		Email:         "demo@cruisevoyager.com",
		Password:      hashed,
		FirstName:     "Demo",
		LastName:      "Voyager",
		EmailVerified: true,
		Metadata:      metadata(id),
	}
}

func seedCruises(userID string) []cruiseModel.Cruise {
	departure := timezone.Now().AddDate(0, 2, 0).Truncate(24 * time.Hour)
	salePrice := 749.0

	return []cruiseModel.Cruise{
		{
			ID:             uuid.NewString(),
			Title:          "Caribbean Paradise",
			Description:    "Seven nights across the eastern Caribbean with stops in Nassau, St. Thomas and San Juan.",
			Destination:    "Caribbean",
			ImageURL:       "https://images.cruisevoyager.com/caribbean-paradise.jpg",
			CruiseLine:     "Royal Voyages",
			ShipName:       "Ocean Jewel",
			DeparturePort:  "Miami",
			DepartureDate:  departure,
			ReturnDate:     departure.AddDate(0, 0, 7),
			Duration:       7,
			PricePerPerson: 899,
			SalePrice:      &salePrice,
			IsBestSeller:   true,
			IsSpecialOffer: true,
			Amenities:      []string{"Pool", "Spa", "Casino", "Kids Club"},
			CabinTypes:     []string{"Interior", "Ocean View", "Balcony", "Suite"},
			Metadata:       metadata(userID),
		},
		{
			ID:             uuid.NewString(),
			Title:          "Mediterranean Romance",
			Description:    "Ten nights through Barcelona, Rome and the Greek islands with late-evening port stays.",
			Destination:    "Mediterranean",
			ImageURL:       "https://images.cruisevoyager.com/mediterranean-romance.jpg",
			CruiseLine:     "Azure Line",
			ShipName:       "Stella Maris",
			DeparturePort:  "Barcelona",
			DepartureDate:  departure.AddDate(0, 1, 0),
			ReturnDate:     departure.AddDate(0, 1, 10),
			Duration:       10,
			PricePerPerson: 1499,
			IsBestSeller:   true,
			Amenities:      []string{"Pool", "Spa", "Theater", "Wine Bar"},
			CabinTypes:     []string{"Ocean View", "Balcony", "Suite"},
			Metadata:       metadata(userID),
		},
		{
			ID:             uuid.NewString(),
			Title:          "Alaska Adventure",
			Description:    "Twelve nights of glaciers and fjords from Seattle through the Inside Passage.",
			Destination:    "Alaska",
			ImageURL:       "https://images.cruisevoyager.com/alaska-adventure.jpg",
			CruiseLine:     "Northern Star",
			ShipName:       "Glacier Queen",
			DeparturePort:  "Seattle",
			DepartureDate:  departure.AddDate(0, 3, 0),
			ReturnDate:     departure.AddDate(0, 3, 12),
			Duration:       12,
			PricePerPerson: 1899,
			IsSpecialOffer: true,
			Amenities:      []string{"Observation Deck", "Spa", "Naturalist Talks"},
			CabinTypes:     []string{"Interior", "Ocean View", "Balcony"},
			Metadata:       metadata(userID),
		},
	}
}

func seedReviews(userID string, catalog []cruiseModel.Cruise) []reviewModel.Review {
	comments := map[string][]struct {
		rating  int
		comment string
	}{
		"Caribbean Paradise": {
			{5, "Fantastic week, the kids never wanted to leave the pool deck."},
			{4, "Great value on the sale fare, food was excellent."},
		},
		"Mediterranean Romance": {
			{5, "The overnight in Santorini alone was worth the fare."},
		},
		"Alaska Adventure": {
			{4, "Glacier Bay was unforgettable, bring warm layers."},
		},
	}

	var seeded []reviewModel.Review

	for _, cruise := range catalog {
		for _, entry := range comments[cruise.Title] {
			seeded = append(seeded, reviewModel.Review{
				ID:       uuid.NewString(),
				UserID:   userID,
				CruiseID: cruise.ID,
				Rating:   entry.rating,
				Comment:  entry.comment,
				Metadata: metadata(userID),
			})
		}
	}

	return seeded
}

func metadata(by string) gModel.Metadata {
	now := timezone.Now()

	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  by,
		ModifiedBy: by,
	}
}
