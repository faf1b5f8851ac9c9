package kafka

import "time"

// PetAdoptedEvent represents a completed adoption
type PetAdoptedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	PetID     string    `json:"pet_id"`
	PetName   string    `json:"pet_name"`
	OwnerID   string    `json:"owner_id"`
	AdopterID string    `json:"adopter_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypePetAdopted = "pet.adopted"
)

// Kafka topics
const (
	TopicPetAdopted = "pet-adopted"
)
