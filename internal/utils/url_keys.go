package utils

const (
	// CardIdKey is the key for the card id used in routing parameters.
	CardIdKey = "cardId"

	// CardSlugKey is the key for the card slug used in routing parameters.
	CardSlugKey = "cardSlug"
)
