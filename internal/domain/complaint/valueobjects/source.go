package valueobjects

import "fmt"

// Source records how the complaint reached the dealer.
type Source string

const (
	SourcePhone    Source = "phone"
	SourceWhatsApp Source = "whatsapp"
	SourceWalkIn   Source = "walk_in"
	SourceAMC      Source = "amc"
	SourceOther    Source = "other"
)

var validSources = map[Source]bool{
	SourcePhone:    true,
	SourceWhatsApp: true,
	SourceWalkIn:   true,
	SourceAMC:      true,
	SourceOther:    true,
}

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	return validSources[s]
}

func NewSource(s string) (Source, error) {
	src := Source(s)
	if !src.IsValid() {
		return "", fmt.Errorf("invalid source: %s", s)
	}
	return src, nil
}
