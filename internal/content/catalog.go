package content

// HydrationPhrases are sent by the hourly water broadcast
var HydrationPhrases = []string{
	"💧 Time to drink some water! Stay hydrated.",
	"🚰 Hydration check: have a glass of water now!",
	"💦 Quick reminder: water helps your focus and mood.",
	"🧊 Take a sip of water and stretch your shoulders.",
	"🥤 Hydrate! Small sips often beat one large drink.",
	"💧 Feeling thirsty? Drink up and breathe deeply.",
	"🍋 Try water with a slice of lemon for a refreshing boost.",
	"💧 Keep a water bottle nearby, sip frequently!",
	"🔔 Hydration reminder: 1 glass now, another in an hour!",
	"💚 Water helps your body and mind, take a drink.",
	"💧 Quick goal: drink 250ml of water in the next 10 minutes.",
	"⚡ Boost your energy: stand up and drink some water.",
}

var Quotes = []string{
	"The only way to do great work is to love what you do. - Steve Jobs",
	"Your time is limited, don't waste it living someone else's life. - Steve Jobs",
	"The future belongs to those who believe in the beauty of their dreams. - Eleanor Roosevelt",
	"It is during our darkest moments that we must focus to see the light. - Aristotle",
	"The only impossible journey is the one you never begin. - Tony Robbins",
	"Success is not final, failure is not fatal. - Winston Churchill",
	"Believe you can and you're halfway there. - Theodore Roosevelt",
	"Do what you can, with what you have, where you are. - Theodore Roosevelt",
	"Excellence is not a skill, it's an attitude. - Ralph Marston",
	"The best time to plant a tree was 20 years ago. The second best time is now. - Chinese Proverb",
	"Don't watch the clock; do what it does. Keep going. - Sam Levenson",
	"Great things never come from comfort zones. - Unknown",
	"Dream it. Wish it. Do it. - Unknown",
	"Success doesn't just find you. You have to go out and get it. - Unknown",
	"The harder you work for something, the greater you'll feel when you achieve it. - Unknown",
	"Dream bigger. Do bigger. - Unknown",
	"Don't stop when you're tired. Stop when you're done. - Unknown",
	"Wake up with determination. Go to bed with satisfaction. - Unknown",
	"Do something today that your future self will thank you for. - Sean Patrick Flanery",
	"Little things? There are no little things. - Unknown",
	"It's not whether you get knocked down, it's whether you get up. - Vince Lombardi",
}

var Affirmations = []string{
	"You are capable of amazing things. 💪",
	"Your potential is limitless, keep taking steps. ✨",
	"You are stronger and kinder than you give yourself credit for. 🌟",
	"Small progress is still progress. Celebrate it. 🎉",
	"You deserve rest, joy, and success. 🎯",
	"Your presence matters to others, even when you doubt it. 💖",
	"Challenges grow you; you're doing the work. 🌱",
	"Breathe, reset, continue. You have this. 🧘",
	"You are resilient, resourceful, and learning daily. 🏆",
	"Today is a fresh start, be curious and kind. ☀️",
	"Your actions create ripples, keep going. 🤝",
	"Dream, plan, act. One step at a time. 💭",
	"Small acts of self-care compound into big change. 🌿",
	"You belong and you are enough, exactly as you are. 💚",
}

// WorkoutIdeas is the pool used when no known difficulty is requested
var WorkoutIdeas = []string{
	"⏱️ 2-Minute Desk Stretch: Stand, reach arms up, hinge at hips, gentle side bends. Great for posture!",
	"🏃 10 Jumping Jacks: Quick cardio burst to increase circulation and focus.",
	"📍 Wall Push-ups: 10–15 slow reps, keeping core tight. Great upper-body starter.",
	"🧘 5-Minute Walk: Walk outside if possible, fresh air helps reset the mind.",
	"💪 Bodyweight Squats: 15 reps, controlled descent, knees tracking toes.",
	"🤸 Plank Hold: 30–60 seconds. Keep a straight line from head to heels.",
	"🏃 Stairs: 3–5 rounds up and down at a steady pace for cardio and legs.",
	"🙏 Mini Yoga Flow: 8–10 minutes of sun salutations and hip openers.",
	"👣 Walking Lunges: 10 per leg, focus on balance and posture.",
	"⛹️ High Knees: 30–45 seconds to elevate heart rate, a great micro-workout.",
	"🔁 7-Minute Circuit: 30s squats, 30s push-ups, 30s plank, 30s rest. Repeat twice.",
}

var WorkoutsByDifficulty = map[string][]string{
	"easy":   {"10 push-ups", "15 squats", "20 jumping jacks"},
	"medium": {"20 push-ups", "30 squats", "1-minute plank"},
	"hard":   {"30 push-ups", "50 squats", "2-minute plank"},
}

var BreathingExercises = []string{
	"🌬️ Box Breathing (4-4-4-4):\n  1. Inhale 4\n  2. Hold 4\n  3. Exhale 4\n  4. Hold 4\n  Repeat 4–6 cycles. Great for grounding and focus.",
	"🌊 4-7-8 Breathing (Relaxation):\n  1. Inhale 4\n  2. Hold 7\n  3. Exhale 8\n  Repeat 4 cycles for deep relaxation and sleep prep.",
	"🌬️ Belly Breathing (Grounding):\n  1. Place hand on belly\n  2. Inhale slowly, feel belly expand\n  3. Exhale fully\n  Repeat 8–10 times to activate calm.",
	"🎯 Energizing Breath (Morning boost):\n  1. 10 quick short inhales\n  2. Long slow exhale\n  Repeat 1 minute to increase alertness.",
	"🫧 Alternate Nostril (Balance):\n  1. Close right nostril, inhale left\n  2. Close left, exhale right\n  Repeat 6–8 rounds for balance and calm.",
}

// WellnessTips is the pool used when no known theme is requested
var WellnessTips = []string{
	"💤 Sleep: Aim for 7–9 hours. Maintain a consistent bedtime routine.",
	"💧 Hydration: Sip water throughout the day. Flavor with fruit if helpful.",
	"🚶 Movement: Short frequent walks beat one long sedentary block.",
	"🍎 Nutrition: Prioritize whole foods and include protein with meals.",
	"🧘 Mindfulness: 5 minutes of breathwork reduces stress and sharpens focus.",
	"📱 Digital Detox: Reduce screens 1 hour before bedtime for better sleep.",
	"☀️ Sunlight: Morning light helps regulate circadian rhythm and mood.",
	"👥 Social: Schedule short check-ins with friends. Social health matters.",
	"📚 Learning: Try micro-learning. 10 minutes daily adds up fast.",
	"🎵 Music: Use playlists to shape mood and motivation throughout the day.",
	"🎯 Goals: Break big goals into tiny, actionable tasks and celebrate small wins.",
	"✍️ Gratitude: Write 1 small win each evening to build positivity.",
}

var TipsByTheme = map[string][]string{
	"hydration":   {"Drink a glass of water every hour.", "Carry a reusable water bottle."},
	"mindfulness": {"Take 5 deep breaths.", "Spend 5 minutes meditating."},
	"fitness":     {"Stretch for 5 minutes.", "Take a short walk."},
}
