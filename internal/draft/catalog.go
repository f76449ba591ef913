package draft

import "github.com/jmaydwell1/eliteprep/internal/types"

// Sports lists the selectable sports. The wizard currently allows a single
// selection; the draft models it as a list because the API expects one.
var Sports = []string{"Golf", "Tennis", "Baseball", "Basketball"}

// Genders lists the selectable gender options.
var Genders = []string{
	string(types.GenderMale),
	string(types.GenderFemale),
}

// AthleticStatuses lists the selectable competitive levels.
var AthleticStatuses = []string{
	string(types.StatusBeginner),
	string(types.StatusIntermediate),
	string(types.StatusAdvanced),
	string(types.StatusProfessional),
}

// States lists the 50 US state names accepted by the profile step.
var States = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California",
	"Colorado", "Connecticut", "Delaware", "Florida", "Georgia",
	"Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
	"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland",
	"Massachusetts", "Michigan", "Minnesota", "Mississippi", "Missouri",
	"Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey",
	"New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
	"South Dakota", "Tennessee", "Texas", "Utah", "Vermont",
	"Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
}
