package model

// Mapping связывает полный URL с его коротким алиасом
type Mapping struct {
	FullURL  string `json:"fullUrl"`
	ShortURL string `json:"shortUrl"`
}

// MappingEntry представляет запись маппинга в файловом хранилище
type MappingEntry struct {
	UUID     string `json:"uuid"`
	ShortURL string `json:"shortUrl"`
	FullURL  string `json:"fullUrl"`
}

// Mapping возвращает маппинг без служебных полей
func (e MappingEntry) Mapping() Mapping {
	return Mapping{FullURL: e.FullURL, ShortURL: e.ShortURL}
}
