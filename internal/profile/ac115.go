package profile

func ac115_400() *Profile {
	return &Profile{
		ID:           "115vac400",
		Label:        "115 V AC, 400 Hz",
		AC:           true,
		NominalVolts: 115,
		Steady:       Range{Min: 108.00, Max: 118.00},
		Frequency:    &Range{Min: 393.00, Max: 407.00},
		RippleMaxPct: 5.0,
		Undervoltage: Transient{MaxPct: 20.0, MaxDurationMS: 50},
		Overvoltage:  Transient{MaxPct: 20.0, MaxDurationMS: 50},
	}
}
