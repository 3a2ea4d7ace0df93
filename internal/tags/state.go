package tags

// TagState describes how a single tag should be presented for a selection
type TagState struct {
	Tag       string `json:"tag"`
	Selected  bool   `json:"selected"`
	Available bool   `json:"available"`
	Disabled  bool   `json:"disabled"`
}

// CategoryState is a category together with the state of each of its tags
type CategoryState struct {
	Key   CategoryKey   `json:"key"`
	Title string        `json:"title"`
	Mode  SelectionMode `json:"mode"`
	Tags  []TagState    `json:"tags"`
}

// Describe computes the presentation state of every tag in categories.
//
// available holds the tags carried by at least one playlist of the current
// result; a nil set marks every tag available. A tag is disabled when it is
// not selected and is either excluded by the policy or not available.
func (p ExclusionPolicy) Describe(
	categories Categories,
	active Selection,
	available map[string]struct{},
) []CategoryState {
	out := make([]CategoryState, 0, len(categories))
	for _, category := range categories {
		disabled := p.DisabledTags(active, category.Key)

		states := make([]TagState, 0, len(category.Tags))
		for _, tag := range category.Tags {
			selected := active.Contains(tag)
			_, excluded := disabled[tag]
			isAvailable := available == nil
			if !isAvailable {
				_, isAvailable = available[tag]
			}

			states = append(states, TagState{
				Tag:       tag,
				Selected:  selected,
				Available: isAvailable,
				Disabled:  !selected && (excluded || !isAvailable),
			})
		}

		out = append(out, CategoryState{
			Key:   category.Key,
			Title: category.Title,
			Mode:  category.Mode,
			Tags:  states,
		})
	}
	return out
}
