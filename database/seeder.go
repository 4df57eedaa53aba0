package database

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sumpierrezf/star-wars-api-with-token/models"

	"gorm.io/gorm"
)

// CatalogSeed is the on-disk shape of a catalog seed file.
type CatalogSeed struct {
	Characters []models.Character `json:"characters"`
	Planets    []models.Planet    `json:"planets"`
	Vehicles   []models.Vehicle   `json:"vehicles"`
}

// SeedResult counts the rows inserted by SeedCatalog.
type SeedResult struct {
	Characters int
	Planets    int
	Vehicles   int
}

func (r SeedResult) Total() int {
	return r.Characters + r.Planets + r.Vehicles
}

// LoadCatalogSeed reads a seed file. An empty path returns the built-in catalog.
func LoadCatalogSeed(path string) (*CatalogSeed, error) {
	if path == "" {
		return DefaultCatalogSeed(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}
	var seed CatalogSeed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse catalog seed %s: %w", path, err)
	}
	return &seed, nil
}

// SeedCatalog inserts every seed entry whose name is not stored yet.
// Entries without a name are skipped since they cannot be matched on rerun.
func SeedCatalog(db *gorm.DB, seed *CatalogSeed) (SeedResult, error) {
	var res SeedResult
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, c := range seed.Characters {
			ok, err := insertMissing(tx, &c, "character_name", c.CharacterName)
			if err != nil {
				return err
			}
			if ok {
				res.Characters++
			}
		}
		for _, p := range seed.Planets {
			ok, err := insertMissing(tx, &p, "planet_name", p.PlanetName)
			if err != nil {
				return err
			}
			if ok {
				res.Planets++
			}
		}
		for _, v := range seed.Vehicles {
			ok, err := insertMissing(tx, &v, "vehicle_name", v.VehicleName)
			if err != nil {
				return err
			}
			if ok {
				res.Vehicles++
			}
		}
		return nil
	})
	return res, err
}

func insertMissing[T any](tx *gorm.DB, row *T, nameColumn string, name *string) (bool, error) {
	if name == nil || *name == "" {
		return false, nil
	}
	var count int64
	if err := tx.Model(new(T)).Where(nameColumn+" = ?", *name).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := tx.Create(row).Error; err != nil {
		return false, err
	}
	return true, nil
}

func str(s string) *string { return &s }
func num(n int64) *int64   { return &n }

// DefaultCatalogSeed returns the catalog loaded when no seed file is configured.
func DefaultCatalogSeed() *CatalogSeed {
	return &CatalogSeed{
		Characters: []models.Character{
			{CharacterName: str("Luke Skywalker"), EyeColor: str("blue"), Gender: str("male"), HairColor: str("blond"), Height: num(172), SkinColor: str("fair")},
			{CharacterName: str("C-3PO"), EyeColor: str("yellow"), Gender: str("n/a"), HairColor: str("n/a"), Height: num(167), SkinColor: str("gold")},
			{CharacterName: str("R2-D2"), EyeColor: str("red"), Gender: str("n/a"), HairColor: str("n/a"), Height: num(96), SkinColor: str("white, blue")},
			{CharacterName: str("Darth Vader"), EyeColor: str("yellow"), Gender: str("male"), HairColor: str("none"), Height: num(202), SkinColor: str("white")},
			{CharacterName: str("Leia Organa"), EyeColor: str("brown"), Gender: str("female"), HairColor: str("brown"), Height: num(150), SkinColor: str("light")},
		},
		Planets: []models.Planet{
			{PlanetName: str("Tatooine"), Climate: str("arid"), Population: num(200000), OrbitalPeriod: num(304), RotationPeriod: num(23), Diameter: num(10465)},
			{PlanetName: str("Alderaan"), Climate: str("temperate"), Population: num(2000000000), OrbitalPeriod: num(364), RotationPeriod: num(24), Diameter: num(12500)},
			{PlanetName: str("Yavin IV"), Climate: str("temperate, tropical"), Population: num(1000), OrbitalPeriod: num(4818), RotationPeriod: num(24), Diameter: num(10200)},
			{PlanetName: str("Hoth"), Climate: str("frozen"), OrbitalPeriod: num(549), RotationPeriod: num(23), Diameter: num(7200)},
			{PlanetName: str("Dagobah"), Climate: str("murky"), OrbitalPeriod: num(341), RotationPeriod: num(23), Diameter: num(8900)},
		},
		Vehicles: []models.Vehicle{
			{VehicleName: str("Sand Crawler"), CargoCapacity: num(50000), Consumables: str("2 months"), CostInCredits: num(150000), CrewCapacity: num(46), Manufacturer: str("Corellia Mining Corporation")},
			{VehicleName: str("T-16 skyhopper"), CargoCapacity: num(50), Consumables: str("0"), CostInCredits: num(14500), CrewCapacity: num(1), Manufacturer: str("Incom Corporation")},
			{VehicleName: str("X-34 landspeeder"), CargoCapacity: num(5), Consumables: str("unknown"), CostInCredits: num(10550), CrewCapacity: num(1), Manufacturer: str("SoroSuub Corporation")},
			{VehicleName: str("TIE/LN starfighter"), CargoCapacity: num(65), Consumables: str("2 days"), CrewCapacity: num(1), Manufacturer: str("Sienar Fleet Systems")},
			{VehicleName: str("Snowspeeder"), CargoCapacity: num(10), Consumables: str("none"), CrewCapacity: num(2), Manufacturer: str("Incom corporation")},
		},
	}
}
