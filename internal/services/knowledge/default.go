package knowledge

// Topic names of the built-in knowledge base, in lookup order.
const (
	TopicGreetings      = "greetings"
	TopicProgramming    = "programming"
	TopicAIML           = "ai_ml"
	TopicWebDevelopment = "web_development"
	TopicCareer         = "career"
)

// DefaultTopics returns the built-in tech knowledge base.
func DefaultTopics() []Topic {
	return []Topic{
		{
			Name:     TopicGreetings,
			Keywords: []string{"hello", "hi", "hey", "namaste", "salaam", "shukriya"},
			Responses: ResponseList{
				"Namaste! Aapse milkar bahut khushi hui! 👋",
				"Hey! Main yahin hoon aapki madad ke liye! 🤖",
				"Shukriya poochne ke liye! Main bilkul ready hoon! 💪",
				"Salaam! Batao, main kya kar sakta hoon?",
			},
		},
		{
			Name:     TopicProgramming,
			Keywords: []string{"python", "javascript", "java", "c++", "programming", "coding", "code"},
			Responses: GroupedResponses{
				{Key: "python", Responses: []string{
					"Python ek powerful aur easy language hai! Machine learning, web development, data science, sab jagah chalti hai.",
					"Python seekhne ke liye python.org ka tutorial dekho ya YouTube par beginner series follow karo.",
					"Python beginner-friendly hai aur iska syntax bahut simple hai!",
				}},
				{Key: "javascript", Responses: []string{
					"JavaScript web development ka dil hai! Browser mein chalti hai aur websites ko interactive banati hai.",
					"Frontend ke liye JavaScript zaroori hai. React, Vue, Angular jaise frameworks isi par bane hain.",
					"JavaScript seekh li toh web development ka raasta khul jata hai!",
				}},
				{Key: "java", Responses: []string{
					"Java ek strongly typed, object-oriented language hai. Android apps aur enterprise backends mein bahut use hoti hai.",
					"Java seekhne ke liye pehle OOP concepts pakko: classes, inheritance, interfaces.",
					"Spring Boot Java ka sabse popular backend framework hai!",
				}},
				{Key: "c++", Responses: []string{
					"C++ fast aur low-level control wali language hai. Games, competitive programming aur systems mein use hoti hai.",
					"C++ mein pointers aur memory management samajhna zaroori hai.",
					"DSA practice ke liye C++ ki STL bahut kaam aati hai!",
				}},
				{Key: "programming", Responses: []string{
					"Programming basics se shuru karo: variables, loops, functions samjho.",
					"Regular practice karoge toh programming aasan ho jayegi!",
					"Ek language choose karo aur usi mein expert ban jao!",
				}},
				{Key: "coding", Responses: []string{
					"Coding roz thodi thodi karo, consistency sabse important hai!",
					"Coding practice ke liye LeetCode, HackerRank, Codeforces try karo.",
				}},
				{Key: "code", Responses: []string{
					"Clean code likho: achhe naam, chhote functions, aur tests!",
					"Code review se bahut kuch seekhne ko milta hai. Open source projects mein PR bhejo!",
				}},
			},
		},
		{
			Name:     TopicAIML,
			Keywords: []string{"ai", "machine learning", "deep learning", "neural", "tensorflow", "pytorch", "data science"},
			Responses: GroupedResponses{
				{Key: "machine learning", Responses: []string{
					"Machine Learning aise algorithms use karta hai jo data se seekhte hain aur predictions karte hain.",
					"ML ke 3 types hain: Supervised Learning, Unsupervised Learning, Reinforcement Learning.",
					"ML seekhne ke liye Python aur Math (Linear Algebra, Probability) zaroori hai!",
				}},
				{Key: "ai", Responses: []string{
					"Artificial Intelligence ka matlab hai machine ko human-like intelligence dena.",
					"AI future ka field hai! ChatGPT, DALL-E, ye sab AI ke examples hain.",
					"AI seekhne se pehle ML ke fundamentals samajh lo.",
				}},
				{Key: "data science", Responses: []string{
					"Data Science = Programming + Statistics + Domain Knowledge",
					"Data scientist ka kaam hai data analyze karke insights nikalna.",
					"Python, SQL, Pandas, NumPy data science ke essential tools hain!",
				}},
				{Key: "deep learning", Responses: []string{
					"Deep Learning mein multi-layer neural networks use hote hain: images, speech, text sab handle karte hain.",
					"Deep Learning ke liye GPU aur bahut saara data chahiye hota hai.",
				}},
				{Key: "neural", Responses: []string{
					"Neural network neurons ki layers se bana hota hai jo weights adjust karke seekhte hain.",
					"Backpropagation neural networks ko train karne ka core algorithm hai.",
				}},
				{Key: "tensorflow", Responses: []string{
					"TensorFlow Google ka deep learning framework hai, production deployment ke liye kaafi strong hai.",
					"TensorFlow ke saath Keras API use karo, shuruaat aasan ho jayegi.",
				}},
				{Key: "pytorch", Responses: []string{
					"PyTorch research community ka favourite framework hai, dynamic graphs ke saath.",
					"PyTorch seekhne ke liye official tutorials aur fast.ai course best hain.",
				}},
			},
		},
		{
			Name:     TopicWebDevelopment,
			Keywords: []string{"web", "website", "frontend", "backend", "html", "css", "react", "node", "express"},
			Responses: GroupedResponses{
				{Key: "web", Responses: []string{
					"Web development mein HTML, CSS, JavaScript use hote hain.",
					"Frontend aur Backend, ye dono web development ke parts hain.",
					"Responsive websites ke liye modern CSS frameworks use karo!",
				}},
				{Key: "frontend", Responses: []string{
					"Frontend wo part hai jo user ko dikhta hai: UI/UX.",
					"React, Vue, Angular popular frontend frameworks hain.",
					"HTML, CSS, JavaScript frontend development ke basics hain.",
				}},
				{Key: "backend", Responses: []string{
					"Backend mein database, server aur business logic hota hai.",
					"Python (Flask, Django), Node.js, Java, ye backend ke liye use hote hain.",
					"Backend secure aur scalable hona zaroori hai!",
				}},
				{Key: "html", Responses: []string{
					"HTML webpage ka structure banata hai: headings, paragraphs, links, forms.",
					"Semantic HTML tags (header, nav, main, footer) use karo, accessibility better hoti hai.",
				}},
				{Key: "css", Responses: []string{
					"CSS se webpage ka look aur layout control hota hai.",
					"Flexbox aur Grid seekh lo, layout ki aadhi problems solve ho jayengi!",
				}},
				{Key: "react", Responses: []string{
					"React components aur state ke basis par UI banata hai.",
					"React seekhne se pehle modern JavaScript (ES6+) achhe se samjho.",
				}},
				{Key: "node", Responses: []string{
					"Node.js se JavaScript server par chalti hai.",
					"Node.js ka event loop samajhna async code ke liye zaroori hai.",
				}},
				{Key: "express", Responses: []string{
					"Express Node.js ka minimal web framework hai, REST APIs jaldi ban jaati hain.",
					"Express mein middleware ka concept sabse important hai.",
				}},
			},
		},
		{
			Name:     TopicCareer,
			Keywords: []string{"career", "job", "salary", "internship", "company", "interview", "hiring"},
			Responses: GroupedResponses{
				{Key: "career", Responses: []string{
					"Tech career mein bahut scope hai! Frontend, backend, full-stack, data science, kuch bhi choose kar sakte ho.",
					"Resume strong banao aur portfolio projects banao!",
					"Interviews ke liye DSA (Data Structures & Algorithms) important hai.",
				}},
				{Key: "job", Responses: []string{
					"Job dhundne ke liye LinkedIn, Indeed, Glassdoor use karo.",
					"Internships se experience milta hai aur pehli job aasan ho jaati hai.",
					"Networking bhi important hai: tech communities join karo!",
				}},
				{Key: "salary", Responses: []string{
					"Fresher software engineer ki salary India mein aam taur par 3-8 LPA hoti hai, skills aur company par depend karta hai.",
					"Salary negotiate karne se pehle market research karo: Glassdoor, levels.fyi dekho.",
				}},
				{Key: "internship", Responses: []string{
					"Internship ke liye Internshala, LinkedIn aur company career pages check karo.",
					"Internship mein seekhna sabse important hai, stipend baad mein.",
				}},
				{Key: "company", Responses: []string{
					"Company choose karte waqt learning, team aur culture dekho, sirf brand nahi.",
					"Startups mein ownership zyada milti hai, badi companies mein structure.",
				}},
				{Key: "interview", Responses: []string{
					"Interview ke liye DSA, system design basics aur apne projects achhe se prepare karo.",
					"Mock interviews do, confidence badhta hai!",
				}},
				{Key: "hiring", Responses: []string{
					"Hiring season mein referrals sabse kaam aate hain.",
					"Companies ke hiring posts LinkedIn par follow karo.",
				}},
			},
		},
	}
}

// Default returns the built-in knowledge base.
func Default() *Base {
	b, err := NewBase(DefaultTopics())
	if err != nil {
		panic("knowledge: invalid built-in data: " + err.Error())
	}
	return b
}
