package team

var nflTeams = []string{
	"Arizona Cardinals",
	"Atlanta Falcons",
	"Baltimore Ravens",
	"Buffalo Bills",
	"Carolina Panthers",
	"Chicago Bears",
	"Cincinnati Bengals",
	"Cleveland Browns",
	"Dallas Cowboys",
	"Denver Broncos",
	"Detroit Lions",
	"Green Bay Packers",
	"Houston Texans",
	"Indianapolis Colts",
	"Jacksonville Jaguars",
	"Kansas City Chiefs",
	"Las Vegas Raiders",
	"Los Angeles Chargers",
	"Los Angeles Rams",
	"Miami Dolphins",
	"Minnesota Vikings",
	"New England Patriots",
	"New Orleans Saints",
	"New York Giants",
	"New York Jets",
	"Philadelphia Eagles",
	"Pittsburgh Steelers",
	"San Francisco 49ers",
	"Seattle Seahawks",
	"Tampa Bay Buccaneers",
	"Tennessee Titans",
	"Washington Commanders",
}

// cfbOverrides maps feed display names whose school name does not prefix the
// canonical form.
var cfbOverrides = map[string]string{
	"Miami Hurricanes":              "Miami (FL)",
	"Ole Miss Rebels":               "Mississippi",
	"Pitt Panthers":                 "Pittsburgh",
	"UConn Huskies":                 "Connecticut",
	"UCF Knights":                   "Central Florida",
	"USC Trojans":                   "Southern California",
	"UMass Minutemen":               "Massachusetts",
	"App State Mountaineers":        "Appalachian State",
	"Hawai'i Rainbow Warriors":      "Hawaii",
	"San José State Spartans":       "San Jose State",
	"Southern Miss Golden Eagles":   "Southern Mississippi",
	"UL Monroe Warhawks":            "Louisiana-Monroe",
	"Louisiana Ragin' Cajuns":       "Louisiana-Lafayette",
	"FIU Panthers":                  "Florida International",
	"FAU Owls":                      "Florida Atlantic",
	"UNLV Rebels":                   "Nevada-Las Vegas",
	"UTEP Miners":                   "Texas-El Paso",
	"UTSA Roadrunners":              "Texas-San Antonio",
	"Sam Houston Bearkats":          "Sam Houston State",
	"NC State Wolfpack":             "North Carolina State",
	"Middle Tennessee Blue Raiders": "Middle Tennessee State",
}

// cfbCanonical is the set of canonical college names.
var cfbCanonical = []string{
	"Air Force", "Akron", "Alabama", "Appalachian State", "Arizona", "Arizona State",
	"Arkansas", "Arkansas State", "Army", "Auburn", "Ball State", "Baylor",
	"Boise State", "Boston College", "Bowling Green", "BYU", "Buffalo", "California",
	"Central Florida", "Central Michigan", "Charlotte", "Cincinnati", "Clemson",
	"Coastal Carolina", "Colorado", "Colorado State", "Connecticut", "Delaware", "Duke",
	"East Carolina", "Eastern Michigan", "Florida", "Florida Atlantic",
	"Florida International", "Florida State", "Fresno State", "Georgia",
	"Georgia Southern", "Georgia State", "Georgia Tech", "Hawaii", "Houston",
	"Illinois", "Indiana", "Iowa", "Iowa State", "Jacksonville State", "James Madison",
	"Kansas", "Kansas State", "Kennesaw State", "Kent State", "Kentucky", "Liberty",
	"Louisiana-Lafayette", "Louisiana-Monroe", "Louisiana Tech", "Louisville", "LSU",
	"Marshall", "Maryland", "Massachusetts", "Memphis", "Miami (FL)", "Miami (OH)",
	"Michigan", "Michigan State", "Middle Tennessee State", "Minnesota", "Mississippi",
	"Mississippi State", "Missouri", "Navy", "Nebraska", "Nevada", "Nevada-Las Vegas",
	"New Mexico", "New Mexico State", "North Carolina", "North Carolina State",
	"North Texas", "Northern Illinois", "Northwestern", "Notre Dame", "Ohio",
	"Ohio State", "Oklahoma", "Oklahoma State", "Old Dominion", "Oregon",
	"Oregon State", "Penn State", "Pittsburgh", "Purdue", "Rice", "Rutgers",
	"Sacramento State", "Sam Houston State", "San Diego State", "San Jose State", "SMU",
	"South Alabama", "South Carolina", "South Florida", "Southern California",
	"Southern Mississippi", "Stanford", "Syracuse", "TCU", "Temple", "Tennessee",
	"Texas", "Texas A&M", "Texas-El Paso", "Texas-San Antonio", "Texas State",
	"Texas Tech", "Toledo", "Troy", "Tulane", "Tulsa", "UAB", "UCLA", "Utah",
	"Utah State", "Vanderbilt", "Virginia", "Virginia Tech", "Wake Forest",
	"Washington", "Washington State", "West Virginia", "Western Kentucky",
	"Western Michigan", "Wisconsin", "Wyoming",
}
