package profile

func dc28() *Profile {
	return &Profile{
		ID:           "28vdc",
		Label:        "28 V DC",
		NominalVolts: 28,
		Steady:       Range{Min: 22.00, Max: 29.00},
		RippleMaxPct: 5.0,
		Undervoltage: Transient{MaxPct: 20.0, MaxDurationMS: 50},
		Overvoltage:  Transient{MaxPct: 20.0, MaxDurationMS: 50},
	}
}
