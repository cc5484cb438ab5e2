// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package icons

import "sync"

// Icon categories used by the built-in catalogue.
const (
	CategoryGeneral       = "general"
	CategoryMedia         = "media"
	CategoryCommunication = "communication"
	CategoryPeople        = "people"
	CategoryBusiness      = "business"
	CategoryDevices       = "devices"
)

// builtin is the picker's icon set, in the order the picker shows it.
var builtin = []Entry{
	{Name: "zap", Category: CategoryGeneral},
	{Name: "star", Category: CategoryGeneral},
	{Name: "check", Category: CategoryGeneral},
	{Name: "shield", Category: CategoryGeneral},
	{Name: "rocket", Category: CategoryGeneral},
	{Name: "heart", Category: CategoryGeneral},
	{Name: "smile", Category: CategoryGeneral},
	{Name: "thumbs-up", Category: CategoryGeneral},
	{Name: "image", Category: CategoryMedia},
	{Name: "video", Category: CategoryMedia},
	{Name: "music", Category: CategoryMedia},
	{Name: "camera", Category: CategoryMedia},
	{Name: "phone", Category: CategoryCommunication},
	{Name: "mail", Category: CategoryCommunication},
	{Name: "map-pin", Category: CategoryCommunication},
	{Name: "clock", Category: CategoryCommunication},
	{Name: "user", Category: CategoryPeople},
	{Name: "users", Category: CategoryPeople},
	{Name: "settings", Category: CategoryBusiness},
	{Name: "search", Category: CategoryBusiness},
	{Name: "bell", Category: CategoryBusiness},
	{Name: "calendar", Category: CategoryBusiness},
	{Name: "briefcase", Category: CategoryBusiness},
	{Name: "database", Category: CategoryBusiness},
	{Name: "cloud", Category: CategoryDevices},
	{Name: "hard-drive", Category: CategoryDevices},
	{Name: "cpu", Category: CategoryDevices},
	{Name: "monitor", Category: CategoryDevices},
	{Name: "smartphone", Category: CategoryDevices},
	{Name: "tablet", Category: CategoryDevices},
	{Name: "battery", Category: CategoryDevices},
	{Name: "wifi", Category: CategoryDevices},
	{Name: FallbackName, Category: CategoryGeneral},
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalogue
)

// Default returns the built-in catalogue, built on first use.
func Default() *Catalogue {
	defaultOnce.Do(func() {
		c, err := NewCatalogue(builtin, FallbackName)
		if err != nil {
			panic("icons: invalid built-in catalogue: " + err.Error())
		}
		defaultCat = c
	})
	return defaultCat
}
