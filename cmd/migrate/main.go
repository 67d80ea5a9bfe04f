package main

import (
	"log"

	"medicine-chatbot-be/internal/config"
	"medicine-chatbot-be/internal/model"
	"medicine-chatbot-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsProduction())
	if err != nil {
		log.Fatal("Error: Failed to connect to database: ", err)
	}

	log.Println("Step 1: Enabling pgvector...")
	if err := database.EnableVectorExtension(db); err != nil {
		log.Fatal("Error: Failed to enable vector extension: ", err)
	}

	log.Println("Step 2: Running AutoMigrate...")
	models := []interface{}{
		&model.Drug{},
		&model.DrugPassage{},
		&model.UserProfile{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatal("Error: AutoMigrate failed: ", err)
	}

	log.Println("Step 3: Indexing passage metadata...")
	indexSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_drug_passages_drugbank_id ON drug_passages ((metadata ->> 'drugbank_id'));`,
		`CREATE INDEX IF NOT EXISTS idx_drug_passages_embedding ON drug_passages USING hnsw (embedding_value vector_cosine_ops);`,
	}
	for _, sql := range indexSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to create index: %v. Continuing...", err)
		}
	}

	log.Println("Migration complete.")
}
