package heuristic

var pythonRoadmaps = []string{
	"Python seekhne ke steps:\n1. Basics (variables, loops, functions) seekho\n2. OOP concepts samjho\n3. Libraries use karna seekho (NumPy, Pandas)\n4. Real projects banao\n5. Practice karte raho!",
	"Python roadmap:\n→ Fundamentals (syntax, data types)\n→ Functions aur modules\n→ OOP concepts\n→ File handling aur exceptions\n→ Libraries (Requests, BeautifulSoup)\n→ Projects banao!",
}

const javascriptRoadmap = "JavaScript seekho:\n1. Basics (variables, operators, loops)\n2. DOM manipulation\n3. ES6+ features (arrow functions, classes)\n4. Async/Await\n5. React/Vue frameworks\n6. Projects build karo!"

const webRoadmap = "Web development ka path:\n1. HTML/CSS fundamentals\n2. JavaScript (vanilla)\n3. Frontend frameworks (React)\n4. Backend (Node.js, Python)\n5. Databases (MongoDB, PostgreSQL)\n6. Deploy karo!"

const learningTemplate = "'%s' seekhne ke liye:\n1. Fundamentals samjho\n2. Online resources aur tutorials dekho\n3. Practice problems karo\n4. Real projects banao\n5. Community mein engage raho\n6. Lagataar improve karte raho!"

const machineLearningExplainer = "Machine Learning kya hai?\nMachine Learning = programs jo data se seekhte hain aur predictions karte hain!\n\nTypes:\n• Supervised Learning (labeled data)\n• Unsupervised Learning (unlabeled data)\n• Reinforcement Learning (trial-error)\n\nCommon algorithms: Linear Regression, Decision Trees, Neural Networks"

const apiExplainer = "API (Application Programming Interface) kya hai?\nAPI = ek interface jo alag-alag applications ko aapas mein baat karne deta hai!\n\nExample:\nWeather app → Weather API → Weather data\n\nTypes: REST, GraphQL, SOAP\nUse: Data exchange, third-party integration"

const databaseExplainer = "Database kya hai?\nDatabase = organized data ka collection!\n\nTypes:\n• Relational (SQL) - Tables\n• NoSQL - Documents, Key-Value\n• Graph - Relationships\n\nPopular: MySQL, PostgreSQL, MongoDB, Firebase"

const definitionTemplate = "'%s' ke baare mein basic jaankari:\n\nMain concepts:\n→ Definition aur purpose\n→ Kaise kaam karta hai\n→ Use cases\n→ Benefits aur drawbacks\n→ Real world examples\n\nKya aap aur specific detail chahte ho?"

const careerGuide = "Tech Career Guide:\n\n1. Entry Level: Intern/Junior Dev\n   → 2-5 LPA (India)\n   → Seekhte raho\n\n2. Mid Level: Senior Dev (3-5 yrs)\n   → 8-15 LPA\n   → Leadership seekho\n\n3. Senior: Tech Lead (5+ yrs)\n   → 15-30+ LPA\n   → Architecture decide karo\n\nTips: Portfolio banao, GitHub par contribute karo, networking karo!"

var greetings = []string{
	"Namaste! Aapke AI chatbot mein swagat hai! 🚀 Kya main aapki help kar sakta hoon?",
	"Hey there! Main tech topics ka expert hoon! Python, Web Dev, ML, kuch bhi pooch lo.",
	"Shukriya! Aapse milkar khushi hui! Tech se juda koi bhi sawaal poocho! 💻",
}

const closingTemplate = "'%s' - Interesting question! 🤔\n\nMain in topics mein madad kar sakta hoon:\n• Programming (Python, JavaScript)\n• Web Development\n• Machine Learning & AI\n• Data Science\n• Career guidance\n\nKoi specific topic explore karna chahte ho?"
