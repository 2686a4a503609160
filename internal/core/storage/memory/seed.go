package memory

import (
	"fmt"
	"os"

	"github.com/coursehive-lab/coursehive/internal/core/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Contributions []seedContribution `yaml:"contributions"`
}

type seedContribution struct {
	ID                 string      `yaml:"id"`
	OwnerID            string      `yaml:"owner_id"`
	Title              string      `yaml:"title"`
	Price              string      `yaml:"price"`
	Active             *bool       `yaml:"active"`
	RequiresEnrollment *bool       `yaml:"requires_enrollment"`
	Videos             []seedVideo `yaml:"videos"`
}

type seedVideo struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	URL   string `yaml:"video_url"`
}

// LoadCatalogFile seeds contributions and videos from a YAML file.
// Contributions are active unless the file says otherwise. Ids must be UUIDs,
// matching what the API accepts.
func (s *Store) LoadCatalogFile(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read catalog seed: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return 0, fmt.Errorf("parse catalog seed %s: %w", path, err)
	}

	for i, sc := range seed.Contributions {
		if sc.ID == "" || sc.OwnerID == "" {
			return 0, fmt.Errorf("catalog seed entry %d: id and owner_id are required", i)
		}
		if _, err := uuid.Parse(sc.ID); err != nil {
			return 0, fmt.Errorf("catalog seed entry %d: id %q is not a uuid", i, sc.ID)
		}
		price := decimal.Zero
		if sc.Price != "" {
			if price, err = decimal.NewFromString(sc.Price); err != nil {
				return 0, fmt.Errorf("catalog seed %s: invalid price %q: %w", sc.ID, sc.Price, err)
			}
		}
		active := true
		if sc.Active != nil {
			active = *sc.Active
		}

		s.PutContribution(storage.Contribution{
			ID:                 sc.ID,
			OwnerID:            sc.OwnerID,
			Title:              sc.Title,
			Price:              price,
			Active:             active,
			RequiresEnrollment: sc.RequiresEnrollment,
		})
		for _, v := range sc.Videos {
			if _, err := uuid.Parse(v.ID); err != nil {
				return 0, fmt.Errorf("catalog seed %s: video id %q is not a uuid", sc.ID, v.ID)
			}
			s.PutVideo(storage.Video{ID: v.ID, ContributionID: sc.ID, Title: v.Title, URL: v.URL})
		}
	}
	return len(seed.Contributions), nil
}
