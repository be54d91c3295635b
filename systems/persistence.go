package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedSettings is the player preference data kept between runs.
type SavedSettings struct {
	Debug bool `json:"debug"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the per-user data directory for settings storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "hallownest",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings returns nil without an error when nothing was saved yet or
// persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}
