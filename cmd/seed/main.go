package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/wanderplan/wanderplan/config"
	"github.com/wanderplan/wanderplan/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	ownerID := seedUser(db, "owner@wanderplan.dev", hash, "Demo Owner")
	editorID := seedUser(db, "editor@wanderplan.dev", hash, "Demo Editor")
	viewerID := seedUser(db, "viewer@wanderplan.dev", hash, "Demo Viewer")
	fmt.Printf("seeded users (password=%s): owner=%s editor=%s viewer=%s\n", password, ownerID, editorID, viewerID)

	var itineraryID string
	err = db.QueryRow(`
		INSERT INTO itineraries (owner_id, title, description, destination, start_date, end_date, budget, currency, is_public)
		VALUES ($1, 'Kyoto in Autumn', 'A week of temples, gardens and food.', 'Kyoto, Japan', '2026-11-10', '2026-11-17', 2500, 'USD', true)
		RETURNING id
	`, ownerID).Scan(&itineraryID)
	if err != nil {
		log.Fatalf("failed to seed itinerary: %v", err)
	}
	fmt.Printf("seeded itinerary: %s\n", itineraryID)

	if _, err := db.Exec(`
		INSERT INTO itinerary_items (itinerary_id, type, title, description, location, start_time, end_time, cost, created_by)
		VALUES
			($1, 'accommodation', 'Machiya guesthouse', 'Traditional wooden townhouse near Gion.',
			 '{"name":"Gion, Kyoto","coordinates":{"lat":35.0037,"lng":135.7788}}', '2026-11-10T15:00:00Z', '2026-11-17T10:00:00Z', 900, $2),
			($1, 'activity', 'Fushimi Inari at dawn', 'Beat the crowds through the torii gates.',
			 '{"name":"Fushimi Inari Taisha"}', '2026-11-11T05:30:00Z', '2026-11-11T09:00:00Z', 0, $2)
		ON CONFLICT DO NOTHING
	`, itineraryID, ownerID); err != nil {
		log.Fatalf("failed to seed items: %v", err)
	}

	// Editor already accepted; viewer invitation still pending
	if _, err := db.Exec(`
		INSERT INTO collaborators (itinerary_id, user_id, role, invited_at, accepted_at)
		VALUES ($1, $2, 'editor', now(), now())
		ON CONFLICT (itinerary_id, user_id) DO NOTHING
	`, itineraryID, editorID); err != nil {
		log.Fatalf("failed to seed editor collaborator: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO collaborators (itinerary_id, user_id, role, invited_at, accepted_at)
		VALUES ($1, $2, 'viewer', now(), NULL)
		ON CONFLICT (itinerary_id, user_id) DO NOTHING
	`, itineraryID, viewerID); err != nil {
		log.Fatalf("failed to seed viewer collaborator: %v", err)
	}
	fmt.Println("seeded collaborators: editor accepted, viewer pending")
}

func seedUser(db *sql.DB, email, hash, name string) string {
	var id string
	err := db.QueryRow(`
		INSERT INTO users (email, password_hash, name, avatar_url)
		VALUES ($1, $2, $3, '')
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, name).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", email, err)
	}
	return id
}
