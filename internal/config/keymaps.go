package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	PrevPerson string `yaml:"prev_person"`
	NextPerson string `yaml:"next_person"`
	PrevLane   string `yaml:"prev_lane"`
	NextLane   string `yaml:"next_lane"`
	PrevDay    string `yaml:"prev_day"`
	NextDay    string `yaml:"next_day"`
	PrevWeek   string `yaml:"prev_week"`
	NextWeek   string `yaml:"next_week"`
	PrevMonth  string `yaml:"prev_month"`
	NextMonth  string `yaml:"next_month"`
	Today      string `yaml:"today"`

	// Board
	ToggleView   string `yaml:"toggle_view"`
	ToggleEdit   string `yaml:"toggle_edit"`
	TogglePool   string `yaml:"toggle_pool"`
	PickUp       string `yaml:"pick_up"`
	Drop         string `yaml:"drop"`
	CancelDrag   string `yaml:"cancel_drag"`
	Unassign     string `yaml:"unassign"`
	ToggleOffDay string `yaml:"toggle_off_day"`
	EditPending  string `yaml:"edit_pending"`

	// Pool
	PrevPoolItem string `yaml:"prev_pool_item"`
	NextPoolItem string `yaml:"next_pool_item"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevPerson: "k",
		NextPerson: "j",
		PrevLane:   "K",
		NextLane:   "J",
		PrevDay:    "h",
		NextDay:    "l",
		PrevWeek:   "b",
		NextWeek:   "w",
		PrevMonth:  "[",
		NextMonth:  "]",
		Today:      "t",

		ToggleView:   "v",
		ToggleEdit:   "e",
		TogglePool:   "p",
		PickUp:       " ",
		Drop:         "enter",
		CancelDrag:   "esc",
		Unassign:     "u",
		ToggleOffDay: "o",
		EditPending:  "i",

		PrevPoolItem: "K",
		NextPoolItem: "J",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// fillDefaults replaces any unset binding with its default so a partial
// config file can't leave actions unreachable.
func (k *KeyMappings) fillDefaults() {
	def := DefaultKeyMappings()
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&k.PrevPerson, def.PrevPerson)
	fill(&k.NextPerson, def.NextPerson)
	fill(&k.PrevLane, def.PrevLane)
	fill(&k.NextLane, def.NextLane)
	fill(&k.PrevDay, def.PrevDay)
	fill(&k.NextDay, def.NextDay)
	fill(&k.PrevWeek, def.PrevWeek)
	fill(&k.NextWeek, def.NextWeek)
	fill(&k.PrevMonth, def.PrevMonth)
	fill(&k.NextMonth, def.NextMonth)
	fill(&k.Today, def.Today)
	fill(&k.ToggleView, def.ToggleView)
	fill(&k.ToggleEdit, def.ToggleEdit)
	fill(&k.TogglePool, def.TogglePool)
	fill(&k.PickUp, def.PickUp)
	fill(&k.Drop, def.Drop)
	fill(&k.CancelDrag, def.CancelDrag)
	fill(&k.Unassign, def.Unassign)
	fill(&k.ToggleOffDay, def.ToggleOffDay)
	fill(&k.EditPending, def.EditPending)
	fill(&k.PrevPoolItem, def.PrevPoolItem)
	fill(&k.NextPoolItem, def.NextPoolItem)
	fill(&k.ShowHelp, def.ShowHelp)
	fill(&k.Quit, def.Quit)
}
