package forcing

import (
	"encoding/gob"
	"fmt"
	"os"
)

// SaveGob caches the parsed forcing so repeated runs skip CSV parsing.
func (frc *Forcing) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" Forcing.SaveGob %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(frc); err != nil {
		return fmt.Errorf(" Forcing.SaveGob %v", err)
	}
	return nil
}

// LoadGob loads a cached forcing.
func LoadGob(fp string) (*Forcing, error) {
	var frc Forcing
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(&frc); err != nil {
		return nil, err
	}
	return &frc, nil
}
