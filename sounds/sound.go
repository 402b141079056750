package sounds

type Category string

const (
	CategoryPhoneme        Category = "phoneme"
	CategoryCustom         Category = "custom"
	CategoryMisstroke      Category = "misstroke"
	CategoryHyphen         Category = "hyphen"
	CategoryAsterisk       Category = "asterisk"
	CategorySlash          Category = "slash"
	CategoryBeginInversion Category = "begin-inversion"
	CategoryEndInversion   Category = "end-inversion"
	CategoryJunk           Category = "junk"
)

// Sound is one atom of an annotation.
type Sound interface {
	Category() Category
	String() string
}

// chorded is implemented by sounds that contribute keys to the assembled stroke.
type chorded interface {
	Sound
	chord() string
}

type Phoneme struct {
	Mnemonic string
	Chord    string
	Kind     Category
}

var _ chorded = Phoneme{}

func (p Phoneme) Category() Category {
	return p.Kind
}

func (p Phoneme) chord() string {
	return p.Chord
}

func (p Phoneme) String() string {
	switch p.Kind {
	case CategoryMisstroke:
		if p.Mnemonic == "" {
			return "!" + p.Chord
		}
		return "!" + p.Mnemonic + ":" + p.Chord
	case CategoryCustom:
		return p.Mnemonic + ":" + p.Chord
	}
	return p.Mnemonic
}

type Hyphen struct{}

var _ chorded = Hyphen{}

func (Hyphen) Category() Category { return CategoryHyphen }
func (Hyphen) chord() string { return "-" }
func (Hyphen) String() string { return "-" }

type Asterisk struct{}

var _ chorded = Asterisk{}

func (Asterisk) Category() Category { return CategoryAsterisk }
func (Asterisk) chord() string { return "*" }
func (Asterisk) String() string { return "*" }

type Slash struct{}

var _ chorded = Slash{}

func (Slash) Category() Category { return CategorySlash }
func (Slash) chord() string { return "/" }
func (Slash) String() string { return "/" }

type BeginInversion struct{}

func (BeginInversion) Category() Category { return CategoryBeginInversion }
func (BeginInversion) String() string { return "[" }

type EndInversion struct{}

func (EndInversion) Category() Category { return CategoryEndInversion }
func (EndInversion) String() string { return "]" }

type Junk struct {
	Text string
}

func (Junk) Category() Category { return CategoryJunk }
func (j Junk) String() string { return j.Text }
