package game

// AnimalView is the read-only view of one animal handed to hosts.
type AnimalView struct {
	X         float32 `json:"x"`
	Y         float32 `json:"y"`
	Rotation  float32 `json:"rotation"` // normalized to [-pi, pi)
	Satiation int     `json:"satiation"`
}

// FoodView is the read-only view of one food.
type FoodView struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Snapshot is a copy of the world for rendering or export. It shares no
// memory with the simulation.
type Snapshot struct {
	Generation int          `json:"generation"`
	Age        int          `json:"age"`
	Animals    []AnimalView `json:"animals"`
	Foods      []FoodView   `json:"foods"`
}

// Snapshot copies the current world state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Generation: s.generation,
		Age:        s.age,
		Animals:    make([]AnimalView, len(s.world.animals)),
		Foods:      make([]FoodView, len(s.world.foods)),
	}
	for i, a := range s.world.animals {
		snap.Animals[i] = AnimalView{
			X:         a.Position.X,
			Y:         a.Position.Y,
			Rotation:  a.Rotation.Normalized(),
			Satiation: a.Satiation,
		}
	}
	for i, f := range s.world.foods {
		snap.Foods[i] = FoodView{X: f.Position.X, Y: f.Position.Y}
	}
	return snap
}
