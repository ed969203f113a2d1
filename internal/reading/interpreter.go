package reading

import (
	"fmt"
	"strings"

	"soultether/internal/models"
)

// signTraits carries the keyword list and description for one sign.
type signTraits struct {
	keywords    string
	description string
}

var signTable = map[string]signTraits{
	"Aries": {
		"pioneering, courageous, direct, competitive, passionate",
		"You charge forward with warrior spirit, fearless and direct. You're the zodiac's initiator, impulsive, courageous, and hungry for new experiences. Your challenge is channeling this fire productively rather than burning out.",
	},
	"Taurus": {
		"stable, grounded, sensual, determined, practical",
		"You're the zodiac's anchor: steady, reliable, and deeply grounded. You possess natural patience and build things that last. Your sensory nature makes you appreciate beauty, comfort, and quality. Your challenge is overcoming stubbornness.",
	},
	"Gemini": {
		"curious, communicative, versatile, witty, intellectual",
		"Your mind is your superpower. You're naturally curious, articulate, and adaptable. You collect knowledge and connect with people effortlessly. Your challenge is staying focused and avoiding superficiality.",
	},
	"Cancer": {
		"nurturing, emotional, protective, intuitive, sensitive",
		"You lead with your heart. Deeply emotional and intuitive, you're naturally protective of loved ones. You remember everything and feel everything intensely. Your challenge is managing emotional overwhelm and releasing the past.",
	},
	"Leo": {
		"confident, creative, generous, regal, expressive",
		"You're born to shine. Naturally charismatic and creative, you command attention wherever you go. Your generous heart makes you a natural leader. Your challenge is managing ego and remembering others' needs matter too.",
	},
	"Virgo": {
		"analytical, practical, helpful, perfectionist, detail-oriented",
		"You see what others miss. Your analytical mind naturally identifies flaws and solutions. Service-oriented and practical, you improve everything you touch. Your challenge is releasing perfectionism and accepting 'good enough.'",
	},
	"Libra": {
		"diplomatic, aesthetic, social, indecisive, justice-seeking",
		"You're the zodiac's diplomat. You naturally see all sides and seek harmony and balance in all things. Your aesthetic sense is refined, and you value relationships deeply. Your challenge is making decisions and avoiding people-pleasing.",
	},
	"Scorpio": {
		"intense, magnetic, secretive, transformative, powerful",
		"You possess magnetic intensity that draws people in. You see beneath surfaces, understanding hidden dynamics. Your power lies in transformation and psychological depth. Your challenge is releasing control and trusting others with your depths.",
	},
	"Sagittarius": {
		"adventurous, philosophical, optimistic, expansive, truthful",
		"You're the zodiac's explorer and philosopher. Perpetually optimistic and hungry for knowledge, you see the bigger picture. Your infectious enthusiasm inspires others. Your challenge is developing patience and grounding grand visions into reality.",
	},
	"Capricorn": {
		"ambitious, responsible, disciplined, strategic, cautious",
		"You're naturally strategic and ambitious. Disciplined and responsible, you take the long view and build enduring success. Your authority comes from earned wisdom. Your challenge is softening your edges and allowing yourself to play.",
	},
	"Aquarius": {
		"innovative, humanitarian, detached, revolutionary, intellectual",
		"You think ahead of your time. Idealistic and intellectual, you see possibility in what others dismiss. You're drawn to causes and communities. Your challenge is staying grounded and balancing detachment with genuine human connection.",
	},
	"Pisces": {
		"intuitive, compassionate, artistic, dreamy, spiritual",
		"You're a mystic and dreamer. Deeply intuitive and empathic, you feel the world's pain and beauty simultaneously. Your artistic sensitivity and spiritual nature make you profoundly creative. Your challenge is maintaining boundaries and grounding in reality.",
	},
}

var planetMeanings = map[models.Body]string{
	models.Sun:       "Your core identity and creative life force. How you express your will and seek recognition.",
	models.Moon:      "Your emotional nature and instinctive needs. How you process feelings and seek security.",
	models.Mercury:   "Your communication style and intellectual approach. How your mind works and you process information.",
	models.Venus:     "Your capacity for love, pleasure, and values. What attracts you and brings joy.",
	models.Mars:      "Your drive, courage, and how you assert yourself. Your passion and competitive nature.",
	models.Jupiter:   "Your expansion, luck, and higher wisdom. Where you attract abundance and tend toward excess.",
	models.Saturn:    "Your lessons and where you build lasting strength. Where you face challenges that lead to maturity.",
	models.Uranus:    "Your individuality and revolutionary impulses. Where you break free from convention.",
	models.Neptune:   "Your spirituality, creativity, and escapism. Where you access intuition and illusion.",
	models.Pluto:     "Your transformation and psychological depth. Where you experience death and rebirth.",
	models.NorthNode: "Your soul's growth direction and life purpose. Where you're meant to evolve.",
}

var houseContexts = map[int]string{
	1:  "identity, appearance, and first impressions",
	2:  "values, resources, and self-worth",
	3:  "communication, thinking, and learning",
	4:  "home, family, and private self",
	5:  "creativity, romance, and self-expression",
	6:  "work, health, and daily service",
	7:  "relationships, marriage, and partnerships",
	8:  "shared resources, sexuality, and transformation",
	9:  "higher learning, spirituality, and travel",
	10: "career, reputation, and public life",
	11: "friendships, groups, and community",
	12: "spirituality, hidden matters, and karma",
}

var aspectMeanings = map[models.AspectType]string{
	models.Conjunction: "A powerful alignment suggesting fusion and emphasized expression of both planetary energies",
	models.Sextile:     "A harmonious 60° angle supporting flow, opportunity, and natural expression between planetary energies",
	models.Square:      "A challenging 90° angle creating dynamic tension and growth through friction and effort",
	models.Trine:       "The most harmonious 120° angle indicating effortless flow, talent, and natural grace",
	models.Opposition:  "A confrontational 180° angle revealing polarity, awareness, and the need for balance",
	models.Quincunx:    "An awkward 150° angle suggesting adjustment, refinement, and learning curves",
}

// Interpreter composes placement descriptions from the dataset, falling
// back to the built-in trait tables when the dataset has no match.
type Interpreter struct {
	dataset *Dataset
}

// NewInterpreter creates an Interpreter over a dataset handle.
func NewInterpreter(dataset *Dataset) *Interpreter {
	if dataset == nil {
		dataset = EmptyDataset()
	}
	return &Interpreter{dataset: dataset}
}

// Describe renders the interpretation text for one placement, keyed on
// (planet, sign, house).
func (i *Interpreter) Describe(planet models.Body, sign string, house int) string {
	if text := i.dataset.Interpretation(string(planet), sign, house); text != "" {
		return text
	}

	traits, ok := signTable[sign]
	if !ok {
		return fmt.Sprintf("Your %s carries a unique signature.", planet)
	}
	meaning := planetMeanings[planet]
	context := houseContexts[house]
	if context == "" {
		context = "an important life area"
	}

	personality := strings.TrimSpace(strings.SplitN(traits.description, "Your challenge", 2)[0])

	var b strings.Builder
	fmt.Fprintf(&b, "Your %s carries the %s signature. %s\n", planet, sign, personality)
	fmt.Fprintf(&b, "In terms of %s, this means: %s When filtered through %s, you express this energy with %s.",
		context, meaning, sign, traits.keywords)
	return b.String()
}

// AspectMeaning returns the general description of an aspect type.
func (i *Interpreter) AspectMeaning(t models.AspectType) string {
	if m, ok := aspectMeanings[t]; ok {
		return m
	}
	return "A complex planetary relationship influencing your psychology and life patterns."
}
