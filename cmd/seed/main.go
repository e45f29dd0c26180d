package main

import (
	"context"
	"log"
	"os"
	"time"

	"play-cards-store/database"
	"play-cards-store/models"

	"go.mongodb.org/mongo-driver/bson"
)

const imagePath = "/assets/home_play_prizes.png"

var seedProducts = []models.Product{
	{Name: "Dragon Flame Card", Price: 1500, Category: "Fantasy", Rarity: "Legendary", Description: "A legendary card imbued with the power of dragon fire."},
	{Name: "Shadow Assassin Card", Price: 900, Category: "Action", Rarity: "Rare", Description: "A rare card used by elite shadow assassins."},
	{Name: "Mystic Wizard Card", Price: 1200, Category: "Magic", Rarity: "Epic", Description: "An epic wizard card with powerful spell abilities."},
	{Name: "Forest Guardian Card", Price: 600, Category: "Nature", Rarity: "Common", Description: "A common guardian card that protects the forest realm."},
	{Name: "Phoenix Rebirth Card", Price: 1800, Category: "Fantasy", Rarity: "Legendary", Description: "A legendary card that rises from ashes."},
	{Name: "Stealth Ninja Card", Price: 850, Category: "Action", Rarity: "Rare", Description: "A rare ninja card for covert missions."},
	{Name: "Arcane Sorcerer Card", Price: 1300, Category: "Magic", Rarity: "Epic", Description: "Epic card wielding arcane magic."},
	{Name: "Earth Elemental Card", Price: 700, Category: "Nature", Rarity: "Common", Description: "A card representing the power of earth."},
	{Name: "Lightning Strike Card", Price: 1400, Category: "Fantasy", Rarity: "Epic", Description: "Strike your enemy with the speed of lightning."},
	{Name: "Silent Rogue Card", Price: 950, Category: "Action", Rarity: "Rare", Description: "A stealthy rogue ready for missions."},
	{Name: "Enchanted Elf Card", Price: 1100, Category: "Magic", Rarity: "Epic", Description: "A mystical elf with enchanted powers."},
	{Name: "River Spirit Card", Price: 650, Category: "Nature", Rarity: "Common", Description: "A gentle spirit of the river."},
	{Name: "Inferno Dragon Card", Price: 1600, Category: "Fantasy", Rarity: "Legendary", Description: "A ferocious dragon with flames."},
	{Name: "Assassin Phantom Card", Price: 900, Category: "Action", Rarity: "Rare", Description: "A rare phantom assassin strikes from shadows."},
	{Name: "Wizard Apprentice Card", Price: 1200, Category: "Magic", Rarity: "Epic", Description: "Apprentice wizard ready to cast spells."},
	{Name: "Mountain Guardian Card", Price: 600, Category: "Nature", Rarity: "Common", Description: "Guardian of the mountains."},
	{Name: "Celestial Knight Card", Price: 1700, Category: "Fantasy", Rarity: "Legendary", Description: "A knight blessed by the stars."},
	{Name: "Shadow Stalker Card", Price: 950, Category: "Action", Rarity: "Rare", Description: "A rare stalker lurking in shadows."},
	{Name: "Mystic Enchanter Card", Price: 1250, Category: "Magic", Rarity: "Epic", Description: "An enchanter with mystical powers."},
	{Name: "Forest Sprite Card", Price: 650, Category: "Nature", Rarity: "Common", Description: "A tiny sprite protecting the forest."},
	{Name: "Dragon Rider Card", Price: 1550, Category: "Fantasy", Rarity: "Legendary", Description: "Ride a dragon into battle."},
	{Name: "Ninja Shadow Card", Price: 880, Category: "Action", Rarity: "Rare", Description: "A stealthy ninja in shadows."},
	{Name: "Arcane Mage Card", Price: 1300, Category: "Magic", Rarity: "Epic", Description: "Mage skilled in arcane arts."},
	{Name: "Wild Wolf Card", Price: 700, Category: "Nature", Rarity: "Common", Description: "A common wolf roaming the wild."},
	{Name: "Flame Sorceress Card", Price: 1450, Category: "Fantasy", Rarity: "Epic", Description: "Sorceress commanding fire."},
	{Name: "Silent Blade Card", Price: 920, Category: "Action", Rarity: "Rare", Description: "Rare blade used by silent assassins."},
	{Name: "Elven Healer Card", Price: 1150, Category: "Magic", Rarity: "Epic", Description: "Healer with powerful elven magic."},
	{Name: "Meadow Guardian Card", Price: 680, Category: "Nature", Rarity: "Common", Description: "Protector of the meadow."},
	{Name: "Titan Dragon Card", Price: 1750, Category: "Fantasy", Rarity: "Legendary", Description: "A mighty dragon of legend."},
	{Name: "Rogue Shadow Card", Price: 940, Category: "Action", Rarity: "Rare", Description: "A rare shadowy rogue."},
	{Name: "Sorcerer Supreme Card", Price: 1350, Category: "Magic", Rarity: "Epic", Description: "Supreme master of magical arts."},
	{Name: "River Guardian Card", Price: 660, Category: "Nature", Rarity: "Common", Description: "Protector of river realms."},
	{Name: "Phoenix Knight Card", Price: 1650, Category: "Fantasy", Rarity: "Legendary", Description: "Knight reborn from phoenix fire."},
	{Name: "Stealth Hunter Card", Price: 910, Category: "Action", Rarity: "Rare", Description: "A hunter moving silently in shadows."},
	{Name: "Mystic Warlock Card", Price: 1280, Category: "Magic", Rarity: "Epic", Description: "Warlock with powerful spells."},
	{Name: "Forest Elf Card", Price: 670, Category: "Nature", Rarity: "Common", Description: "Elf protecting the enchanted forest."},
	{Name: "Dragon Emperor Card", Price: 1800, Category: "Fantasy", Rarity: "Legendary", Description: "The emperor of all dragons."},
	{Name: "Night Assassin Card", Price: 930, Category: "Action", Rarity: "Rare", Description: "A deadly assassin of the night."},
	{Name: "Arcane Wizard Card", Price: 1320, Category: "Magic", Rarity: "Epic", Description: "Wizard mastering arcane spells."},
	{Name: "Mountain Sprite Card", Price: 690, Category: "Nature", Rarity: "Common", Description: "Sprite guarding mountain lands."},
	{Name: "Celestial Dragon Card", Price: 1720, Category: "Fantasy", Rarity: "Legendary", Description: "A dragon blessed by the heavens."},
	{Name: "Shadow Ninja Card", Price: 960, Category: "Action", Rarity: "Rare", Description: "A ninja lurking in shadows."},
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func main() {
	uri := getEnv("MONGODB_URI", "mongodb://localhost:27017")
	dbName := getEnv("MONGODB_DB", "play-cards-store")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := database.ConnectMongo(ctx, uri, dbName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	log.Println("Connected to MongoDB")

	collection := db.Collection("products")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear products: %v", err)
	}
	log.Println("Cleared existing products")

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(seedProducts))
	for _, p := range seedProducts {
		p.Image = imagePath
		p.CreatedAt = now
		p.UpdatedAt = now
		docs = append(docs, p)
	}

	res, err := collection.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	log.Printf("Seeded %d products", len(res.InsertedIDs))
}
