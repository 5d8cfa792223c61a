package models

// Character is a selectable identity in the lobby. The catalog below is what
// the frontend renders; the server never rejects an id it does not know,
// it only enforces uniqueness, so keep ids as plain strings.
type Character struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MonsterID is the one special character. At most one player per room may
// hold it, and only once the room has at least two players.
const MonsterID = "demogorgon"

var Survivors = []Character{
	{ID: "eleven", Name: "Eleven"},
	{ID: "mike", Name: "Mike"},
	{ID: "will", Name: "Will"},
	{ID: "lucas", Name: "Lucas"},
	{ID: "dustin", Name: "Dustin"},
	{ID: "max", Name: "Max"},
	{ID: "steve", Name: "Steve"},
	{ID: "nancy", Name: "Nancy"},
	{ID: "jonathan", Name: "Jonathan"},
	{ID: "robin", Name: "Robin"},
	{ID: "hopper", Name: "Hopper"},
	{ID: "eddie", Name: "Eddie"},
}

var Monster = Character{ID: MonsterID, Name: "Demogorgon"}

var characterNames = buildCharacterNames()

func buildCharacterNames() map[string]string {
	names := make(map[string]string, len(Survivors)+1)
	for _, c := range Survivors {
		names[c.ID] = c.Name
	}
	names[Monster.ID] = Monster.Name
	return names
}

// CharacterName resolves a character id to its display name. Unknown ids
// fall through as-is so the UI still has something to show.
func CharacterName(id string) string {
	if name, ok := characterNames[id]; ok {
		return name
	}
	return id
}
