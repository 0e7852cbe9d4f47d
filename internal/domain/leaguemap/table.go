package leaguemap

// builtinMappings is ordered; first-match resolution depends on this order.
var builtinMappings = []Mapping{
	{TeamOrAthlete: "Ravens", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Eagles", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Rams", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Miami Dolphins", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Colts", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Commanders", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Pittsburgh Steelers", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Chicago Bears", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Tampa Bay Buccaneers", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "49ers", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Bengals", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Buffalo Bills", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Chiefs", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Lions", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Packers", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Minnesota Vikings", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Denver Broncos", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Alabama NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Texas Tech NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Duke", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Houston NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Kentucky NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Texas", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "UConn", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "BYU", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Michigan State", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "St. John's NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Tennessee NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Florida NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Auburn NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Arizona NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "USC NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Kentucky", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Auburn", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Florida", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "UGA", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Tennessee", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Tennesee", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Terps Bball", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Arkansas", League: "NCAAB (2025)", Sport: "NCAAB", MaxPoints: 75},
	{TeamOrAthlete: "Ole Miss", League: "NCAAB (2025)", Sport: "NCAAB", MaxPoints: 75},
	{TeamOrAthlete: "Arizona NCAAB 2025", League: "NCAAB (2025)", Sport: "NCAAB", MaxPoints: 75},
	{TeamOrAthlete: "Alabama", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "Michigan NCAAF", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "South Carolina NCAAF", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "Indiana Football", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "Oklahoma NCAAF", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "Miami NCAAF", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "Texas A&M NCAAF", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "BYU NCAAF", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "SMU NCAAF", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "Colin Morikawa", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Scottie Scheffler", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Matt Fitzpatrick", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "McIlroy", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Tyrell Hatton", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Joaquim Niemann", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Ludvig AuBig", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Xander", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Jordan Spieth", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Akshay Bhatia", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Cameron Smith", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Tom Kim", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Bryson Dechambig", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Hideki Matsuyama", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Jon Rahm", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Justin Thomas", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Koepka", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Sungjae Im", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Sepp Straka", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Victor Hovland", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Will Zalatoris", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Wyndham Clark", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Jakub Mensik", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Zverev", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Alex de Minaur", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Medvedev", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Carlos Alcarez", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Ben Shelton", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Francis Tiafoe", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Jack Draper", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Taylor Fritz", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Tsitsipas", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Holger Rune", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Casper Ruud", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Cerundolo", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Djokovic", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Jelena Ostapenko", League: "Women's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Elena Rybakina", League: "Women's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Sabalenka", League: "Women's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Swiatek", League: "Women's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Emma Navarro", League: "Women's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Emma Raducanu", League: "Women's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Jessica Pegula", League: "Women's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Karolina Muchova", League: "Women's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Barbora Krejcikova", League: "Women's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Elina Svitolina", League: "Women's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "UMD", League: "College Lacrosse", Sport: "Lacrosse", MaxPoints: 25},
	{TeamOrAthlete: "UNC Lax", League: "College Lacrosse", Sport: "Lacrosse", MaxPoints: 25},
	{TeamOrAthlete: "Hopkins", League: "College Lacrosse", Sport: "Lacrosse", MaxPoints: 25},
	{TeamOrAthlete: "Georgetown", League: "College Lacrosse", Sport: "Lacrosse", MaxPoints: 25},
	{TeamOrAthlete: "Michigan Lax", League: "College Lacrosse", Sport: "Lacrosse", MaxPoints: 25},
	{TeamOrAthlete: "Orlando Magic", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "Lakers", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "Boston Celtics", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "Knicks", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "GS Warriors", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "Cavaliers", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "Timberwolves", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "Denver Nuggets", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "Detroit Pistons", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "Los Angeles Clippers", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "Boston Red Sox", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Chicago Cubs", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Dodgers", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Houston Astros", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Kansas City Royals", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Atlanta Braves", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Detroit Tigers", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Seattle Mariners", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Minnesota Twins", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Al Hilal", League: "FIFA Club World Cup", Sport: "FIFA", MaxPoints: 50},
	{TeamOrAthlete: "Bayern Munich", League: "FIFA Club World Cup", Sport: "FIFA", MaxPoints: 50},
	{TeamOrAthlete: "Chelsea", League: "FIFA Club World Cup", Sport: "FIFA", MaxPoints: 50},
	{TeamOrAthlete: "Juventus", League: "FIFA Club World Cup", Sport: "FIFA", MaxPoints: 50},
	{TeamOrAthlete: "Atletico Madrid", League: "FIFA Club World Cup", Sport: "FIFA", MaxPoints: 50},
	{TeamOrAthlete: "Dortmund", League: "FIFA Club World Cup", Sport: "FIFA", MaxPoints: 50},
	{TeamOrAthlete: "Inter Miami", League: "FIFA Club World Cup", Sport: "FIFA", MaxPoints: 50},
	{TeamOrAthlete: "FC Porto", League: "FIFA Club World Cup", Sport: "FIFA", MaxPoints: 50},
	{TeamOrAthlete: "Flamengo", League: "FIFA Club World Cup", Sport: "FIFA", MaxPoints: 50},
	{TeamOrAthlete: "SE Palmeiras SP", League: "FIFA Club World Cup", Sport: "FIFA", MaxPoints: 50},
	{TeamOrAthlete: "Yuki Tsunoda", League: "Formula 1", Sport: "F1", MaxPoints: 50},
	{TeamOrAthlete: "Max Verstappen", League: "Formula 1", Sport: "F1", MaxPoints: 50},
	{TeamOrAthlete: "Army Lax", League: "College Lacrosse", Sport: "Lacrosse", MaxPoints: 25},
	{TeamOrAthlete: "Duke LAX", League: "College Lacrosse", Sport: "Lacrosse", MaxPoints: 25},
	{TeamOrAthlete: "Cuse Lax", League: "College Lacrosse", Sport: "Lacrosse", MaxPoints: 25},
	{TeamOrAthlete: "Harvard Lacrosse", League: "College Lacrosse", Sport: "Lacrosse", MaxPoints: 25},
	{TeamOrAthlete: "Cornell", League: "College Lacrosse", Sport: "Lacrosse", MaxPoints: 25},
	{TeamOrAthlete: "Jannik Sinner", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Coco Gauffstetter", League: "Women's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Joao Fonseca", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "LSU", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Andrew Rubley", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Peterson", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Buffalo Bills", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Bengals", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Chiefs", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Lions", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "49ers", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Denver Broncos", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Michigan NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Auburn NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Florida NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Purdue NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Arizona NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "USC NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Tennessee", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Ohio State", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "SMU NCAAF", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "Texas A&M NCAAF", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "Notre Dame", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "UGA", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "Hideki Matsuyama", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Koepka", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Patrick Cantlay", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Victor Hovland", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Jon Rahm", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Will Zalatoris", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Arizona NCAAB 2025", League: "NCAAB (2025)", Sport: "NCAAB", MaxPoints: 75},
	{TeamOrAthlete: "Ole Miss NCAAB 2025", League: "NCAAB (2025)", Sport: "NCAAB", MaxPoints: 75},
	{TeamOrAthlete: "Arkansas NCAAB 2025", League: "NCAAB (2025)", Sport: "NCAAB", MaxPoints: 75},
	{TeamOrAthlete: "Ole Miss", League: "NCAAB (2025)", Sport: "NCAAB", MaxPoints: 75},
	{TeamOrAthlete: "Arkansas", League: "NCAAB (2025)", Sport: "NCAAB", MaxPoints: 75},
	{TeamOrAthlete: "GS Warriors", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "OKC Thunder", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "Lakers", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "Cavaliers", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "Florida Panthers", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "Oilers", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "Yuki Tsunoda", League: "Formula 1", Sport: "Formula 1", MaxPoints: 50},
	{TeamOrAthlete: "Guardians", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Huff", League: "Impressing Ryan", Sport: "Special Event", MaxPoints: 10},
	{TeamOrAthlete: "Lewis Hamilton", League: "Formula 1", Sport: "F1", MaxPoints: 50},
	{TeamOrAthlete: "Max Verstappen", League: "Formula 1", Sport: "F1", MaxPoints: 50},
	{TeamOrAthlete: "Lando Norris", League: "Formula 1", Sport: "F1", MaxPoints: 50},
	{TeamOrAthlete: "Oliver Bearman", League: "Formula 1", Sport: "F1", MaxPoints: 50},
	{TeamOrAthlete: "Pierre Gasly", League: "Formula 1", Sport: "F1", MaxPoints: 50},
	{TeamOrAthlete: "George Russell", League: "Formula 1", Sport: "F1", MaxPoints: 50},
	{TeamOrAthlete: "Oscar Piastri", League: "Formula 1", Sport: "F1", MaxPoints: 50},
	{TeamOrAthlete: "Alex Albon", League: "Formula 1", Sport: "F1", MaxPoints: 50},
	{TeamOrAthlete: "Charles Leclerc", League: "Formula 1", Sport: "F1", MaxPoints: 50},
	{TeamOrAthlete: "Toronto Maple Leafs", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "Minnesota Wild", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "Colorado Avalanche", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "LA Kings", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "Capitals", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "Dallas Stars", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "Vancouver Canucks", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "Las Vegas Golden Knights", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "New Jersey Devils", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "Tampa Lightning", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "Carolina Hurricanes", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "Winnpeg Jets", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "Canadiens", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "Ottawa Senators", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "New York Rangers", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "Packers", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Houston Texans", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Minnesota Vikings", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Chargers", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Seattle Seahawks", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "New England Patriots", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Jaguars", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "Milwaukee Bucks", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "Houston Rockets", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "St Louis Blues", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "UNC Lax", League: "College Lacrosse", Sport: "Lacrosse", MaxPoints: 35},
	{TeamOrAthlete: "Michigan Lax", League: "College Lacrosse", Sport: "Lacrosse", MaxPoints: 35},
	{TeamOrAthlete: "Georgetown", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "LSU", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Hopkins", League: "College Lacrosse", Sport: "Lacrosse", MaxPoints: 35},
	{TeamOrAthlete: "Medvedev", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 25},
	{TeamOrAthlete: "Andrew Rubley", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 25},
	{TeamOrAthlete: "Sabalenka", League: "Women's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Alex de Minaur", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 25},
	{TeamOrAthlete: "Inter Milan", League: "FIFA Club World Cup", Sport: "FIFA", MaxPoints: 50},
	{TeamOrAthlete: "Phillies", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Carlos Sainz", League: "Formula 1", Sport: "F1", MaxPoints: 50},
	{TeamOrAthlete: "Benfica Lisbon", League: "FIFA Club World Cup", Sport: "FIFA", MaxPoints: 50},
	{TeamOrAthlete: "Botofogo", League: "FIFA Club World Cup", Sport: "FIFA", MaxPoints: 50},
	{TeamOrAthlete: "San Francisco Giants", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Padres", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Antonelli Race Car Driver", League: "Formula 1", Sport: "F1", MaxPoints: 50},
	{TeamOrAthlete: "Minnesota Twins", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Arizona Diamondbacks", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Texas Rangers", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Milwaukee Brewers", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "LA Angels", League: "MLB", Sport: "MLB", MaxPoints: 50},
	{TeamOrAthlete: "Kansas NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Creighton NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "UNC NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "UCLA NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Iowa State NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Louisville NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Gonzaga NCAAB 2026", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "Clemson Football", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "Oregon NCAAF", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "Florida NCAAF", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "Southern Cal NCAAF", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "UNC NCAAF", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
	{TeamOrAthlete: "Tom Kim", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Cameron Smith", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Bryson Dechambig", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Justin Thomas", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Russell Henley", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Sam Burns", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Wyndham Clark", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Sahith Theegala", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Akshay Bhatia", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Sungjae Im", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Min Woo Lee", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Cameron Young", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Tommy Fleetwood", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Shane Lowry", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Corey Conners", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "Casper Ruud", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 25},
	{TeamOrAthlete: "Mirra Andreeva", League: "Women's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Karolina Muchova", League: "Women's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "Army Lax", League: "College Lacrosse", Sport: "Lacrosse", MaxPoints: 35},
	{TeamOrAthlete: "Harvard Lacrosse", League: "College Lacrosse", Sport: "Lacrosse", MaxPoints: 35},
	{TeamOrAthlete: "Richmond LAX", League: "College Lacrosse", Sport: "Lacrosse", MaxPoints: 35},
	{TeamOrAthlete: "F1", League: "Formula 1", Sport: "F1", MaxPoints: 50},
	{TeamOrAthlete: "MTENNIS", League: "Men's Tennis", Sport: "Tennis", MaxPoints: 25},
	{TeamOrAthlete: "WTENNIS", League: "Women's Tennis", Sport: "Tennis", MaxPoints: 19},
	{TeamOrAthlete: "NCAAB26", League: "NCAAB (2026)", Sport: "NCAAB", MaxPoints: 100},
	{TeamOrAthlete: "NFL", League: "NFL", Sport: "NFL", MaxPoints: 150},
	{TeamOrAthlete: "GOLF", League: "Golf Majors", Sport: "Golf", MaxPoints: 50},
	{TeamOrAthlete: "NHL", League: "NHL", Sport: "NHL", MaxPoints: 75},
	{TeamOrAthlete: "NBA", League: "NBA", Sport: "NBA", MaxPoints: 75},
	{TeamOrAthlete: "NCAAF", League: "NCAAF", Sport: "NCAAF", MaxPoints: 100},
}

var builtinLeagues = []League{
	{Name: "NFL", Sport: "NFL", TotalPoints: 150, IsCompleted: false, EndDate: "February 2026"},
	{Name: "NCAAB (2026)", Sport: "NCAAB", TotalPoints: 100, IsCompleted: false, EndDate: "March 2026"},
	{Name: "NCAAB (2025)", Sport: "NCAAB", TotalPoints: 75, IsCompleted: true, EndDate: "Now"},
	{Name: "NCAAF", Sport: "NCAAF", TotalPoints: 100, IsCompleted: false, EndDate: "January 2026"},
	{Name: "Golf Majors", Sport: "Golf", TotalPoints: 50, IsCompleted: true, EndDate: "July 17-20"},
	{Name: "Men's Tennis", Sport: "Tennis", TotalPoints: 19, IsCompleted: true, EndDate: "July 2025"},
	{Name: "Women's Tennis", Sport: "Tennis", TotalPoints: 19, IsCompleted: true, EndDate: "July 2025"},
	{Name: "NBA", Sport: "NBA", TotalPoints: 75, IsCompleted: true, EndDate: "June 2025"},
	{Name: "NHL", Sport: "NHL", TotalPoints: 75, IsCompleted: true, EndDate: "June 2025"},
	{Name: "College Lacrosse", Sport: "Lacrosse", TotalPoints: 35, IsCompleted: true, EndDate: "May 24-26"},
	{Name: "FIFA Club World Cup", Sport: "FIFA", TotalPoints: 50, IsCompleted: true, EndDate: "July 2025"},
	{Name: "MLB", Sport: "MLB", TotalPoints: 50, IsCompleted: false, EndDate: "October 2025"},
	{Name: "Formula 1", Sport: "F1", TotalPoints: 50, IsCompleted: false, EndDate: "December 2025"},
}
