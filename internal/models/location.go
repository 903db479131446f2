package models

// Location - место с заранее известной границей в формате WKT
type Location struct {
	Name string `yaml:"name"`
	WKT  string `yaml:"wkt"`
}

// LocationTable - статическая таблица мест. Заполняется при старте и дальше только читается.
type LocationTable struct {
	names  []string
	byName map[string]string
}

// NewLocationTable строит таблицу, сохраняя порядок первого появления имени
func NewLocationTable(locations []Location) *LocationTable {
	t := &LocationTable{
		names:  make([]string, 0, len(locations)),
		byName: make(map[string]string, len(locations)),
	}
	for _, loc := range locations {
		if _, exists := t.byName[loc.Name]; !exists {
			t.names = append(t.names, loc.Name)
		}
		t.byName[loc.Name] = loc.WKT
	}
	return t
}

// Lookup возвращает WKT полигона по имени
func (t *LocationTable) Lookup(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	wkt, ok := t.byName[name]
	return wkt, ok
}

// Names возвращает копию списка имен
func (t *LocationTable) Names() []string {
	if t == nil {
		return []string{}
	}
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}
