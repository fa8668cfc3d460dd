package species

import "strconv"

// ID is a national dex number.
type ID int

func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// Species is a catalog entry.
type Species struct {
	ID          ID     `yaml:"id"`
	Name        string `yaml:"name"`
	StarterCost int    `yaml:"starter_cost"` // cost to pick as a starter, 1-10
	Obtainable  bool   `yaml:"obtainable"`
}

// IsObtainable reports whether players can currently get the species.
func (s Species) IsObtainable() bool {
	return s.Obtainable
}

// DisplayName returns the name shown to players.
func (s Species) DisplayName() string {
	return s.Name
}

// StarterCost pairs a species with its starter cost.
type StarterCost struct {
	ID   ID
	Cost int
}
