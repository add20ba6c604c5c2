package catalog

import "avika/internal/model"

// Category names of the built-in instrument.
const (
	CategoryAppearance = "Appearance & Awareness"
	CategoryAttitude   = "Attitude & Engagement"
	CategoryBehavior   = "Behavior & Performance"
	CategorySomatic    = "Somatic Complaints"
)

// Default returns the built-in well-being instrument: 4 categories, 12 items,
// options scored 4 (least severe) down to 1.
func Default() *model.Catalog {
	return &model.Catalog{
		Categories: []model.Category{
			{
				Name: CategoryAppearance,
				Items: []model.Item{
					{
						ID:       "Q1",
						Category: CategoryAppearance,
						Intent:   "Over the past two weeks, how would you describe your physical appearance and grooming habits?",
						Options: []model.Option{
							{Label: "A", Text: "Appropriate – Well-dressed and neatly groomed throughout", Score: 4},
							{Label: "B", Text: "Well-groomed – Generally clean and tidy, with some attention to appearance", Score: 3},
							{Label: "C", Text: "Disheveled – Often untidy or unkempt, but basic hygiene maintained", Score: 2},
							{Label: "D", Text: "Neglected hygiene – Frequently poorly groomed, with noticeable issues", Score: 1},
						},
						Keywords: []string{"appearance", "grooming", "dressed", "clean", "hygiene", "clothes", "shower", "shaved", "makeup"},
						Hints:    []string{"how do you look", "how are you dressed", "how do you take care of yourself"},
					},
					{
						ID:       "Q2",
						Category: CategoryAppearance,
						Intent:   "Over the past two weeks, how connected have you felt to your surroundings?",
						Options: []model.Option{
							{Label: "A", Text: "Fully connected – Actively engaged and aware of your environment", Score: 4},
							{Label: "B", Text: "Partially connected – Sometimes engaged, but with occasional feelings of detachment", Score: 3},
							{Label: "C", Text: "Disconnected – Frequently felt distant or detached from surroundings", Score: 2},
							{Label: "D", Text: "Completely detached – Felt removed or numb, as though observing rather than participating", Score: 1},
						},
						Keywords: []string{"connected", "surroundings", "environment", "aware", "present", "detached", "distant"},
						Hints:    []string{"how do you feel about your surroundings", "do you feel present", "how aware are you"},
					},
					{
						ID:       "Q3",
						Category: CategoryAppearance,
						Intent:   "Over the past two weeks, how would you describe your awareness and response to everyday situations?",
						Options: []model.Option{
							{Label: "A", Text: "Alert and responsive – Quickly noticed and responded appropriately", Score: 4},
							{Label: "B", Text: "Mildly distracted – Occasionally missed details but could still participate", Score: 3},
							{Label: "C", Text: "Often preoccupied – Frequently lost in thought, slow or inappropriate responses", Score: 2},
							{Label: "D", Text: "Unaware or withdrawn – Rarely engaged or aware of what was happening", Score: 1},
						},
						Keywords: []string{"aware", "alert", "responsive", "distracted", "preoccupied", "withdrawn"},
						Hints:    []string{"how do you respond to situations", "how aware are you of what's happening"},
					},
				},
			},
			{
				Name: CategoryAttitude,
				Items: []model.Item{
					{
						ID:       "Q4",
						Category: CategoryAttitude,
						Intent:   "How do you generally respond when someone asks for your opinion?",
						Options: []model.Option{
							{Label: "A", Text: "I respond openly and constructively", Score: 4},
							{Label: "B", Text: "I avoid giving direct answers", Score: 3},
							{Label: "C", Text: "I question their intent before answering", Score: 2},
							{Label: "D", Text: "I refuse to answer or challenge the question", Score: 1},
						},
						Keywords: []string{"opinion", "respond", "answer", "question", "avoid", "challenge"},
						Hints:    []string{"how do you give your opinion", "what do you do when asked for your thoughts"},
					},
					{
						ID:       "Q5",
						Category: CategoryAttitude,
						Intent:   "How do you maintain eye contact in a conversation?",
						Options: []model.Option{
							{Label: "A", Text: "I maintain steady and appropriate eye contact", Score: 4},
							{Label: "B", Text: "I look around frequently or avoid direct gaze", Score: 3},
							{Label: "C", Text: "I maintain eye contact but remain reserved", Score: 2},
							{Label: "D", Text: "I stare intensely or aggressively", Score: 1},
						},
						Keywords: []string{"eye contact", "look", "gaze", "stare", "eyes"},
						Hints:    []string{"how do you look at people", "do you make eye contact"},
					},
					{
						ID:       "Q6",
						Category: CategoryAttitude,
						Intent:   "How do you generally move or use gestures when interacting?",
						Options: []model.Option{
							{Label: "A", Text: "I use natural gestures that match my speech", Score: 4},
							{Label: "B", Text: "I fidget or avoid noticeable movement", Score: 3},
							{Label: "C", Text: "I keep my movements restricted or deliberate", Score: 2},
							{Label: "D", Text: "I use abrupt or forceful gestures", Score: 1},
						},
						Keywords: []string{"gesture", "move", "fidget", "restricted", "forceful", "body language"},
						Hints:    []string{"how do you move when talking", "what do you do with your hands"},
					},
				},
			},
			{
				Name: CategoryBehavior,
				Items: []model.Item{
					{
						ID:       "Q7",
						Category: CategoryBehavior,
						Intent:   "How did it feel when you spoke to people during recent conversations?",
						Options: []model.Option{
							{Label: "A", Text: "Pretty normal, nothing different", Score: 4},
							{Label: "B", Text: "A bit faster than usual, but still clear", Score: 3},
							{Label: "C", Text: "Like I have to think a bit more before I speak", Score: 2},
							{Label: "D", Text: "Like words tumble out before I've fully thought them through", Score: 1},
						},
						Keywords: []string{"speak", "talk", "conversation", "words", "think", "clear"},
						Hints:    []string{"how do you feel when talking", "how do you speak in conversations"},
					},
					{
						ID:       "Q8",
						Category: CategoryBehavior,
						Intent:   "How do you usually respond to a rough day?",
						Options: []model.Option{
							{Label: "A", Text: "I shake it off pretty easily and move on", Score: 4},
							{Label: "B", Text: "I get upset, but remind myself it'll pass and keep going", Score: 3},
							{Label: "C", Text: "I try! But it often feels like what I do doesn't matter", Score: 2},
							{Label: "D", Text: "I feel like it's all too much, and nothing I do will really change things", Score: 1},
						},
						Keywords: []string{"rough day", "upset", "shake off", "overwhelm", "cope", "handle"},
						Hints:    []string{"how do you deal with bad days", "what do you do when things go wrong"},
					},
					{
						ID:       "Q9",
						Category: CategoryBehavior,
						Intent:   "What usually happens when you start speaking in a meeting?",
						Options: []model.Option{
							{Label: "A", Text: "I give an update with key points in order", Score: 4},
							{Label: "B", Text: "I pause to collect my thoughts, then explain things", Score: 3},
							{Label: "C", Text: "I start talking but lose track or forget important details", Score: 2},
							{Label: "D", Text: "I struggle to find the right words and jump between unrelated points", Score: 1},
						},
						Keywords: []string{"meeting", "speak", "explain", "thoughts", "track", "words"},
						Hints:    []string{"how do you speak in meetings", "what happens when you present"},
					},
				},
			},
			{
				Name: CategorySomatic,
				Items: []model.Item{
					{
						ID:       "Q10",
						Category: CategorySomatic,
						Intent:   "How often have you felt unexplained physical pain recently?",
						Options: []model.Option{
							{Label: "A", Text: "Not at all – I haven't experienced any such pain", Score: 4},
							{Label: "B", Text: "Occasionally – I've felt some discomfort, but it's rare and manageable", Score: 3},
							{Label: "C", Text: "Frequently – These symptoms happen a few times a week and are noticeable", Score: 2},
							{Label: "D", Text: "Almost daily – The physical discomfort is regular and affecting my routine", Score: 1},
						},
						Keywords: []string{"pain", "ache", "headache", "discomfort", "physical", "body"},
						Hints:    []string{"do you have any pain", "how's your body feeling", "any physical discomfort"},
					},
					{
						ID:       "Q11",
						Category: CategorySomatic,
						Intent:   "Do you experience stomach issues during stress or deadlines?",
						Options: []model.Option{
							{Label: "A", Text: "Rarely – My digestion stays the same regardless of stress", Score: 4},
							{Label: "B", Text: "Sometimes – I notice mild symptoms when I'm under pressure", Score: 3},
							{Label: "C", Text: "Often – My stomach tends to get upset during high-stress situations", Score: 2},
							{Label: "D", Text: "Very frequently – I almost always experience digestive issues during deadlines", Score: 1},
						},
						Keywords: []string{"stomach", "digestion", "stress", "deadline", "upset", "bloating"},
						Hints:    []string{"how's your stomach", "do you get digestive issues", "how do you feel during stress"},
					},
					{
						ID:       "Q12",
						Category: CategorySomatic,
						Intent:   "How often do you feel tired or physically drained?",
						Options: []model.Option{
							{Label: "A", Text: "Almost never – I usually wake up refreshed and energized", Score: 4},
							{Label: "B", Text: "Occasionally – I feel tired once in a while but bounce back quickly", Score: 3},
							{Label: "C", Text: "Often – I feel low on energy most days, even without a clear reason", Score: 2},
							{Label: "D", Text: "Almost always – I feel physically exhausted even when I've rested well", Score: 1},
						},
						Keywords: []string{"tired", "energy", "drained", "exhausted", "rest", "sleep"},
						Hints:    []string{"how's your energy", "do you feel tired", "how do you feel after sleeping"},
					},
				},
			},
		},
	}
}
