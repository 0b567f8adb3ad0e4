package model

// OpenDetail shows the colour under the cursor in the detail overlay along
// with its closest neighbours from every library.
func (m *Model) OpenDetail() bool {
	tab := m.CurrentTab()
	if tab == nil {
		return false
	}
	c, ok := tab.Current()
	if !ok {
		return false
	}

	m.Detail = c
	m.DetailNearby = m.DetailNearby[:0]
	for _, match := range m.Catalog.Nearest(c.Hex, NearestInDetail+1) {
		if match.Color.Name == c.Name && match.Color.Library == c.Library {
			continue
		}
		m.DetailNearby = append(m.DetailNearby, match)
	}
	if len(m.DetailNearby) > NearestInDetail {
		m.DetailNearby = m.DetailNearby[:NearestInDetail]
	}

	m.LastAppMode = m.CurrentAppMode
	m.CurrentAppMode = ModeDetailOverlay
	return true
}
