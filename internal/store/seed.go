package store

// ==================== 初始数据集 ====================
//
// 固定的 9 个课外活动，进程启动时一次性写入目录。
// 服务不提供活动的创建和删除接口，集合本身不会变化。

var defaultActivities = map[string]*Activity{
	"Tennis Club": {
		Description:     "Learn tennis techniques and compete in matches",
		Schedule:        "Wednesdays and Saturdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 16,
		Participants:    []string{"alex@mergington.edu"},
	},
	"Basketball Team": {
		Description:     "Join our competitive basketball team",
		Schedule:        "Mondays and Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 15,
		Participants:    []string{"marcus@mergington.edu", "jordan@mergington.edu"},
	},
	"Art Club": {
		Description:     "Explore painting, drawing, and sculpture",
		Schedule:        "Tuesdays and Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 18,
		Participants:    []string{"isabella@mergington.edu"},
	},
	"Music Ensemble": {
		Description:     "Play instruments and perform in concerts",
		Schedule:        "Wednesdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 25,
		Participants:    []string{"lucas@mergington.edu", "ava@mergington.edu"},
	},
	"Debate Team": {
		Description:     "Develop argumentation and public speaking skills",
		Schedule:        "Mondays and Wednesdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 14,
		Participants:    []string{"noah@mergington.edu"},
	},
	"Science Club": {
		Description:     "Conduct experiments and explore scientific concepts",
		Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 20,
		Participants:    []string{"grace@mergington.edu", "ethan@mergington.edu"},
	},
	"Chess Club": {
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	},
	"Programming Class": {
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	},
	"Gym Class": {
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	},
}
