package validation

import "strconv"

const maxIdentifierLen = 128

func Identifier(identifier string) error {
	if identifier == "" {
		return IdentifierIsRequired
	}

	if len(identifier) > maxIdentifierLen {
		return IdentifierIsTooLong
	}

	return nil
}

func ItemName(name string) error {
	if name == "" {
		return ItemNameIsRequired
	}

	return nil
}

func SearchQuery(q string) error {
	if q == "" {
		return QueryIsRequired
	}

	return nil
}

func AppName(name string) error {
	if name == "" {
		return AppNameIsRequired
	}

	return nil
}

func AppID(appID int) error {
	if appID <= 0 {
		return AppIDIsInvalid
	}

	return nil
}

func ContextIDs(contextIDs []string) error {
	for _, id := range contextIDs {
		if _, err := strconv.ParseUint(id, 10, 64); err != nil {
			return ContextIDIsInvalid
		}
	}

	return nil
}
