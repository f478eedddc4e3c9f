package classify

// Categories is the canonical taxonomy in scan order. Classification walks
// this slice, not the map, so tie scores always resolve to the earliest
// category declared here.
var Categories = []string{
	"responsibilities",
	"requirements",
	"nice_to_have",
	"candidate_profile",
	"benefits",
	"work_conditions",
	"how_to_apply",
	"selection_process",
	"others",
}

// patterns is the curated bilingual keyword table. Loaded once, never
// mutated at runtime.
var patterns = map[string][]string{
	"responsibilities": {
		// Spanish
		"funciones del cargo", "funciones", "tareas del cargo", "responsabilidades",
		"responsabilidades principales", "funciones principales", "actividades principales",
		"qué harás", "que harás", "¿qué harás?", "tus responsabilidades", "tu misión",
		"rol del puesto", "día a día", "objetivos del cargo", "actividades", "tus funciones",
		"serás responsable de", "te encargarás de", "tus tareas", "alcance del rol",
		"descripción de funciones", "principales responsabilidades", "responsabilidades del rol",
		"desafío", "desafío profesional", "ser responsable", "responsable del desarrollo",
		// English
		"key responsibilities", "main responsibilities", "what you'll do", "what you will do",
		"daily tasks", "responsibilities", "your responsibilities", "job responsibilities",
		"core responsibilities", "primary responsibilities", "key accountabilities",
		"what you'll be doing", "your mission", "duties", "role responsibilities",
		"key duties", "main duties", "job duties", "your role", "in this role",
		"what you'll actually do", "what you will actually do", "be responsible of",
		"day to day", "day-to-day", "your day to day", "responsible", "be responsible",
	},
	"requirements": {
		// Spanish
		"requisitos", "requerimientos", "requisitos del cargo", "requerimientos del cargo",
		"requisitos y perfil", "perfil y requisitos", "requisitos mínimos", "requisitos excluyentes",
		"habilidades requeridas", "experiencia requerida", "conocimientos requeridos",
		"tecnologías requeridas", "conocimientos obligatorios", "perfil técnico",
		"qué esperamos de ti", "que esperamos de ti", "lo que buscamos", "qué necesitas",
		"que necesitas", "indispensable", "imprescindible", "necesario", "obligatorio",
		"competencias técnicas", "hard skills", "requisitos técnicos", "experiencia necesaria",
		// English
		"required skills", "requirements", "technical requirements", "must have", "must-have",
		"mandatory skills", "required experience", "minimum requirements", "essential skills",
		"required qualifications", "what we're looking for", "what we are looking for",
		"what you need", "what you'll need", "what you will need", "qualifications",
		"mandatory requirements", "core requirements", "essential requirements",
		"technical skills required", "hard requirements", "non-negotiable requirements",
	},
	"nice_to_have": {
		// Spanish
		"deseables", "deseado", "plus", "un plus", "es un plus", "será un plus",
		"valorable", "se valorará", "valoramos", "habilidades opcionales",
		"conocimientos deseables", "conocimientos valorables", "competencias deseables",
		"ventajas", "puntos extra", "sería genial si", "nos encantaría si",
		"ideal si tienes", "preferible", "preferentemente", "deseable pero no indispensable",
		"habilidades complementarias", "bonus", "extras", "adicionales",
		// English
		"nice to have", "nice-to-have", "preferred qualifications", "bonus skills",
		"desirable skills", "preferred skills", "bonus points", "extra points",
		"would be great if", "we'd love if", "ideally", "preferably",
		"additional skills", "complementary skills", "a plus", "it's a plus",
		"bonus qualifications", "preferred experience", "great to have",
		"optional requirements", "soft requirements", "wish list",
	},
	"candidate_profile": {
		// Spanish
		"perfil del candidato", "a quién buscamos", "a quien buscamos", "perfil buscado",
		"perfil ideal", "candidato ideal", "persona ideal", "buscamos a alguien",
		"cualidades personales", "soft skills", "habilidades blandas", "competencias blandas",
		"personalidad requerida", "características personales", "perfil personal",
		"cómo eres", "como eres", "tu perfil", "sobre ti", "acerca de ti",
		"valores del candidato", "fit cultural", "encaje cultural",
		// English
		"candidate profile", "who we're looking for", "who we are looking for",
		"ideal candidate", "about you", "who you are", "personal qualities",
		"soft skills", "personal skills", "cultural fit", "personality traits",
		"who should apply", "is this you?", "are you the one?", "your profile",
		"personal characteristics", "behavioral competencies", "who will succeed",
		"you're a fit if you", "you are a fit if you",
	},
	"benefits": {
		// Spanish
		"beneficios", "lo que ofrecemos", "qué ofrecemos", "que ofrecemos",
		"por qué trabajar con nosotros", "por que trabajar con nosotros",
		"beneficios del cargo", "beneficios y cultura", "ventajas laborales",
		"compensaciones", "nuestra propuesta", "propuesta de valor", "qué incluye",
		"que incluye", "paquete de beneficios", "beneficios adicionales",
		"prestaciones", "compensación total", "retribución", "perks",
		"beneficios y cultura organizacional", "lo que recibirás",
		"vacaciones", "bono", "inclusión",
		// English
		"benefits", "perks", "what we offer", "why join us", "employee benefits",
		"compensation package", "total rewards", "package", "what's in it for you",
		"perks and benefits", "benefits package", "our offer", "value proposition",
		"employee value proposition", "evp", "rewards", "company benefits",
		"why work with us", "why work here", "what you'll get", "what you will get",
		"vacations", "inclusion", "why join", "join us",
	},
	"work_conditions": {
		// Spanish
		"condiciones", "condiciones laborales", "modalidad de trabajo", "modalidad",
		"jornada", "jornada laboral", "horario", "horario de trabajo",
		"salario", "remuneración", "rango salarial", "compensación económica",
		"ubicación", "lugar de trabajo", "tipo de contrato", "contrato",
		"esquema de trabajo", "formato de trabajo", "condiciones del cargo",
		"detalles del cargo", "información del cargo", "datos del cargo",
		// English
		"work conditions", "workplace", "compensation", "schedule", "salary",
		"location", "contract type", "employment conditions", "working hours",
		"work arrangement", "work format", "job details", "position details",
		"employment type", "work schedule", "pay range", "salary range",
		"working conditions", "terms of employment", "job information",
	},
	"how_to_apply": {
		// Spanish
		"cómo postular", "como postular", "cómo aplicar", "como aplicar",
		"postulación", "proceso de postulación", "envío de cv", "envio de cv",
		"link de postulación", "postula aquí", "postula aqui", "aplica aquí",
		"aplica aqui", "envía tu cv", "envia tu cv", "candidatura", "envia mail",
		"proceso de selección", "pasos para postular", "instrucciones",
		// English
		"how to apply", "application process", "apply now", "submit your application",
		"application instructions", "apply here", "send your cv", "send your resume",
		"application procedure", "next steps", "selection process", "how to proceed",
		"submit application", "application method", "apply for this position", "send email",
	},
	"selection_process": {
		// Spanish
		"proceso de selección", "etapas del proceso", "pasos del proceso",
		"cómo es el proceso", "como es el proceso", "fases de selección",
		"timeline", "cronograma", "duración del proceso", "siguientes pasos",
		// English
		"selection process", "interview process", "hiring process", "process steps",
		"recruitment process", "what to expect", "process timeline", "next steps",
		"stages", "interview stages", "selection stages", "hiring timeline",
	},
	"others": {
		// Spanish
		"otros detalles", "información adicional", "información complementaria",
		"notas adicionales", "observaciones", "consideraciones", "datos extra",
		"más información", "mas información", "detalles adicionales", "otros",
		// English
		"additional info", "additional information", "miscellaneous", "extra information",
		"other details", "notes", "additional notes", "more info", "further information",
		"supplementary information", "other", "extras", "additional details",
	},
}
