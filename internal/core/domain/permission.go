package domain

// PermissionLevel is an ordered trust tier. A caller may invoke a command when
// its level is at least the command's minimum.
type PermissionLevel int

const (
	PermBase PermissionLevel = iota
	PermUser
	PermDJ
	PermAdmin
	PermBotAdmin
	PermBotOwner
)

var permissionNames = map[PermissionLevel]string{
	PermBase:     "base",
	PermUser:     "user",
	PermDJ:       "dj",
	PermAdmin:    "admin",
	PermBotAdmin: "bot_admin",
	PermBotOwner: "bot_owner",
}

func (p PermissionLevel) String() string {
	if name, ok := permissionNames[p]; ok {
		return name
	}

	return "unknown"
}

// Satisfies reports whether p meets the required level.
func (p PermissionLevel) Satisfies(required PermissionLevel) bool {
	return p >= required
}
