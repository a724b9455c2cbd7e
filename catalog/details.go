package catalog

// Reference details used by the letter of medical necessity and the
// patient welcome output. Mock values, consistent with the demo fixture.

type ClinicianDetails struct {
	Name   string
	Clinic string
	Phone  string
}

type GymDetails struct {
	Name    string
	Address string
	Website string
}

var Clinician = ClinicianDetails{
	Name:   "Dr. Jane Foster, MD",
	Clinic: "MoveFitRx Clinical Group",
	Phone:  "(555) 123-4567",
}

var Gym = GymDetails{
	Name:    "Coronado Fitness Club",
	Address: "875 Orange Ave suite 101, Coronado, CA 92118",
	Website: "https://www.coronadofitnessclub.com/",
}
