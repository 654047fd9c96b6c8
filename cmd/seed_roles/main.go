// cmd/seed_roles/main.go
package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"

	roledom "leaguehub/internal/domain/role"
)

// Seeds the role catalog into the "roles" collection so the frontend can
// render role pickers without shipping the table twice. Safe to re-run;
// writes merge.
func main() {
	ctx := context.Background()

	projectID := os.Getenv("PROJECT_ID")
	if projectID == "" {
		projectID = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}
	if projectID == "" {
		log.Fatal("set PROJECT_ID or GOOGLE_CLOUD_PROJECT")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		log.Fatalf("firestore.NewClient: %v", err)
	}
	defer client.Close()

	col := client.Collection("roles")
	now := time.Now().UTC()

	batch := client.Batch()

	for _, def := range roledom.NewCatalog().Definitions() {
		docRef := col.Doc(string(def.Name))

		data := map[string]any{
			"displayName": def.DisplayName,
			"description": def.Description,
			"permissions": roledom.Strings(def.Permissions),
			"canAssign":   rolesToStrings(def.CanAssign),
			"updatedAt":   now,
		}

		batch.Set(docRef, data, firestore.MergeAll)
	}

	if _, err := batch.Commit(ctx); err != nil {
		log.Fatalf("batch.Commit: %v", err)
	}

	log.Println("roles seeded from catalog")
}

func rolesToStrings(rs []roledom.Role) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}
	return out
}
