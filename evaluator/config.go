package evaluator

// Limit is a character budget for one section. Min of 0 means the section
// only has a maximum.
type Limit struct {
	Min int
	Max int
}

// Block is one required structural element of a complete document
type Block struct {
	Name    string
	Pattern string
}

// Weights are the maximum contributions of each category to the overall
// score. The defaults sum to 100.
type Weights struct {
	Readability int
	Seo         int
	Limits      int
	Structure   int
}

// Config holds every tunable table the engine uses. All tables are plain
// data so adding a language or a block is a data change, not a code change.
type Config struct {
	// KeywordPatterns maps a language to its ordered list of SEO phrase
	// patterns. Patterns are matched against the lower-cased document.
	KeywordPatterns map[Language][]string

	// SectionLimits maps a section name to its character budget. Counts
	// are taken after markup stripping and whitespace trimming.
	SectionLimits map[string]Limit

	// RequiredBlocks is the ordered list of structural elements every
	// complete document must contain.
	RequiredBlocks []Block

	// SectionMarkers maps a section name to the capture pattern used to
	// extract it. The first submatch is the section content.
	SectionMarkers map[string]string

	Weights Weights
}

// DefaultConfig returns the production configuration: the en/pt/es keyword
// tables, the title/meta/description budgets and the seven required blocks.
func DefaultConfig() Config {
	return Config{
		KeywordPatterns: map[Language][]string{
			LanguageEnglish: {
				`apartment for sale`,
				`property (for sale )?in [\p{L}\p{N}_]+`,
				`\d+-bedroom`,
				`real estate`,
			},
			LanguagePortuguese: {
				`apartamento à venda`,
				`T\d+`,
				`imóvel em [\p{L}\p{N}_]+`,
				`propriedade`,
			},
			LanguageSpanish: {
				`apartamento en venta`,
				`propiedad en [\p{L}\p{N}_]+`,
				`apartamento de \d+ dormitorios?`,
				`inmueble`,
				`piso en venta`,
			},
		},
		SectionLimits: map[string]Limit{
			"title":            {Max: 70},
			"meta_description": {Max: 155},
			"description":      {Min: 500, Max: 700},
		},
		RequiredBlocks: []Block{
			{Name: "title", Pattern: `(?s)<title>.*?</title>`},
			{Name: "meta_description", Pattern: `(?s)<meta name="description".*?>`},
			{Name: "h1", Pattern: `(?s)<h1>.*?</h1>`},
			{Name: "description", Pattern: `(?s)<section id="description">.*?</section>`},
			{Name: "key_features", Pattern: `(?s)<ul id="key-features">.*?</ul>`},
			{Name: "neighborhood", Pattern: `(?s)<section id="neighborhood">.*?</section>`},
			{Name: "call_to_action", Pattern: `(?s)<p class="call-to-action">.*?</p>`},
		},
		SectionMarkers: map[string]string{
			"title":            `(?s)<title>(.*?)</title>`,
			"meta_description": `(?s)<meta name="description" content="(.*?)">`,
			"description":      `(?s)<section id="description">(.*?)</section>`,
		},
		Weights: Weights{
			Readability: 30,
			Seo:         25,
			Limits:      25,
			Structure:   20,
		},
	}
}
