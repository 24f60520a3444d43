package aigen

import (
	"fmt"
	"strings"
)

// Offline generators used when no provider is configured or a call fails.
// They are pure functions of their input so behavior is reproducible.

func FallbackDescription(topic string) string {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = "something awesome"
	}
	return fmt.Sprintf(
		"Get ready for an amazing video all about %s! We dive into the coolest parts, share some fun surprises, and you might just learn a trick or two. Hit play and join the adventure!",
		topic,
	)
}

func FallbackTags(topic string) []string {
	tags := []string{"fun", "kids", "creative", "awesome", "shorts"}
	topic = strings.TrimSpace(strings.ToLower(topic))
	if topic == "" {
		return tags
	}

	out := make([]string, 0, len(tags)+2)
	out = append(out, topic)
	for _, word := range strings.Fields(topic) {
		if word != topic {
			out = append(out, word)
		}
		if len(out) >= 3 {
			break
		}
	}
	return append(out, tags...)
}

func FallbackThumbnailIdeas(topic string) []string {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = "Your Video"
	}
	return []string{
		fmt.Sprintf("Big bold text: %s!", topic),
		fmt.Sprintf("Surprised face next to %s", topic),
		fmt.Sprintf("Before and after: %s edition", topic),
		fmt.Sprintf("%s with a giant arrow and bright colors", topic),
	}
}

var ideasByCategory = map[string][]string{
	"gaming": {
		"Speedrun your favorite level and react to the timer",
		"Rate the weirdest game glitches you have found",
		"Play a game with inverted controls challenge",
		"Build the silliest base possible in 10 minutes",
		"Guess the game from one sound effect",
	},
	"crafts": {
		"Make a tiny desk organizer from cardboard",
		"Paint rocks to look like your favorite snacks",
		"Turn old t-shirts into no-sew tote bags",
		"Build a marble run from paper tubes",
		"Design your own sticker sheet",
	},
	"science": {
		"Float an egg with salt water step by step",
		"Make a volcano that erupts in slow motion",
		"Grow crystals overnight and film a timelapse",
		"Test which paper airplane design flies farthest",
		"Build a balloon-powered car race",
	},
	"cooking": {
		"Make no-bake snacks in under 5 minutes",
		"Taste test: homemade vs store-bought cookies",
		"Decorate cupcakes blindfolded challenge",
		"Build the ultimate fruit smoothie",
		"Try a recipe from 100 years ago",
	},
}

var defaultIdeas = []string{
	"A day in my life speedrun in 60 seconds",
	"Teach your pet (or plush toy) a new trick",
	"Try drawing with your non-dominant hand",
	"Room tour but everything is a movie prop",
	"Answer fan questions while building LEGO",
}

func FallbackContentIdeas(category string) []string {
	if ideas, ok := ideasByCategory[strings.ToLower(strings.TrimSpace(category))]; ok {
		return ideas
	}
	return defaultIdeas
}
