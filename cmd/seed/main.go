package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/haidrrry/travellingapp/internal/config"
	"github.com/haidrrry/travellingapp/internal/db"
	"github.com/haidrrry/travellingapp/internal/model"
	"github.com/haidrrry/travellingapp/internal/repository"
)

// famousDestinations is the curated catalogue the app ships with.
var famousDestinations = []model.Destination{
	{Name: "Eiffel Tower", Country: "France", Location: "Paris, France", Category: model.CategoryCities, Price: decimal.NewFromInt(300), Description: "Iron lattice tower on the Champ de Mars and symbol of Paris.", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/a/a8/Tour_Eiffel_Wikimedia_Commons.jpg"},
	{Name: "Great Wall", Country: "China", Location: "Beijing, China", Category: model.CategoryCultural, Price: decimal.NewFromInt(450), Description: "Ancient fortification winding across northern China's mountains.", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/1/10/2016_Mutianyu_Great_Wall_02.jpg"},
	{Name: "Statue of Liberty", Country: "USA", Location: "New York, USA", Category: model.CategoryCities, Price: decimal.NewFromInt(350), Description: "Colossal neoclassical statue on Liberty Island in New York Harbor.", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/a/a1/Statue_of_Liberty_7.jpg"},
	{Name: "Colosseum", Country: "Italy", Location: "Rome, Italy", Category: model.CategoryCultural, Price: decimal.NewFromInt(400), Description: "Ancient Roman amphitheatre in the centre of Rome.", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/d/de/Colosseo_2020.jpg"},
	{Name: "Machu Picchu", Country: "Peru", Location: "Cusco, Peru", Category: model.CategoryMountains, Price: decimal.NewFromInt(500), Description: "15th-century Inca citadel set high in the Andes.", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/e/eb/Machu_Picchu%2C_Peru.jpg"},
	{Name: "Sydney Opera House", Country: "Australia", Location: "Sydney, Australia", Category: model.CategoryCities, Price: decimal.NewFromInt(370), Description: "Multi-venue performing arts centre on Sydney Harbour.", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/4/40/Sydney_Opera_House_Sails.jpg"},
	{Name: "Burj Khalifa", Country: "UAE", Location: "Dubai, UAE", Category: model.CategoryCities, Price: decimal.NewFromInt(420), Description: "World's tallest building, rising over downtown Dubai.", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/9/93/Burj_Khalifa.jpg"},
	{Name: "Christ the Redeemer", Country: "Brazil", Location: "Rio, Brazil", Category: model.CategoryCultural, Price: decimal.NewFromInt(330), Description: "Art Deco statue of Jesus atop Mount Corcovado.", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/9/97/Cristo_Redentor_-_Rio.jpg"},
	{Name: "Big Ben", Country: "UK", Location: "London, UK", Category: model.CategoryCities, Price: decimal.NewFromInt(310), Description: "The great bell of the clock at the Palace of Westminster.", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/f/f0/Elizabeth_Tower_from_London_Eye_-_Sept_2006.jpg"},
	{Name: "Mount Fuji", Country: "Japan", Location: "Honshu, Japan", Category: model.CategoryMountains, Price: decimal.NewFromInt(390), Description: "Japan's highest peak and iconic stratovolcano.", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/1/12/Mount_Fuji_from_Hotel_Mt_Fuji.jpg"},
	{Name: "Santorini", Country: "Greece", Location: "Santorini, Greece", Category: model.CategoryBeaches, Price: decimal.NewFromInt(430), Description: "Cycladic island famous for whitewashed villages and caldera views.", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/a/a5/Santorini_-_Thera.jpg"},
	{Name: "Niagara Falls", Country: "Canada", Location: "Ontario, Canada", Category: model.CategoryNature, Price: decimal.NewFromInt(340), Description: "Group of three massive waterfalls on the Niagara River.", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/1/1e/Niagara_Falls_2013.jpg"},
	{Name: "Petra", Country: "Jordan", Location: "Ma'an, Jordan", Category: model.CategoryAdventure, Price: decimal.NewFromInt(460), Description: "Ancient city carved into rose-red sandstone cliffs.", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/3/38/Treasury_petra_crop.jpeg"},
}

func main() {
	log.Println("Starting destination seed...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.DatabaseDSN, cfg.DBCACert)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Destination{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	destinationRepo := repository.NewDestinationRepository(gormDB)
	ctx := context.Background()

	created, updated, err := seedDestinations(ctx, destinationRepo, famousDestinations)
	if err != nil {
		log.Fatalf("Failed to seed destinations: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New destinations created: %d", created)
	log.Printf("  - Existing destinations updated: %d", updated)
	log.Printf("  - Total destinations processed: %d", created+updated)
}

// seedDestinations upserts the catalogue by destination name.
func seedDestinations(ctx context.Context, repo repository.DestinationRepository, destinations []model.Destination) (created int, updated int, err error) {
	for _, destination := range destinations {
		existing, err := repo.FindByName(ctx, destination.Name)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, updated, fmt.Errorf("error checking destination %q: %w", destination.Name, err)
		}

		if existing != nil {
			existing.Country = destination.Country
			existing.Location = destination.Location
			existing.Description = destination.Description
			existing.Category = destination.Category
			existing.Price = destination.Price
			existing.ImageURL = destination.ImageURL
			if err := repo.Update(ctx, existing); err != nil {
				return created, updated, fmt.Errorf("error updating destination %q: %w", destination.Name, err)
			}
			updated++
		} else {
			d := destination
			if err := repo.Create(ctx, &d); err != nil {
				return created, updated, fmt.Errorf("error creating destination %q: %w", destination.Name, err)
			}
			created++
		}
	}

	return created, updated, nil
}
