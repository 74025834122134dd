package resources

import (
	"fmt"

	"praymate/internal/core/model"

	"gopkg.in/yaml.v3"
)

// LoadCatalog parses the embedded character manifest and checks that
// every referenced sprite is present in the bundle.
func LoadCatalog() (model.Catalog, error) {
	var catalog model.Catalog
	if err := yaml.Unmarshal(catalogData, &catalog); err != nil {
		return model.Catalog{}, fmt.Errorf("parse character catalog: %w", err)
	}
	if len(catalog.Characters) == 0 {
		return model.Catalog{}, fmt.Errorf("character catalog is empty")
	}

	for _, character := range catalog.Characters {
		if character.ID == "" {
			return model.Catalog{}, fmt.Errorf("character catalog: entry without id")
		}
		for _, fileName := range []string{character.WorkSprite, character.PraySprite, character.BlinkSprite} {
			if _, err := spriteFS.ReadFile(spriteDir + fileName); err != nil {
				return model.Catalog{}, fmt.Errorf("character %s: missing sprite %s: %w", character.ID, fileName, err)
			}
		}
	}

	return catalog, nil
}

// MustCatalog returns the embedded catalog or panics. The manifest
// ships inside the binary, so a failure here is a packaging bug.
func MustCatalog() model.Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}
