package wire

// RequestName identifies one of the commands the dispatcher understands.
type RequestName string

const (
	ConfigCreate           RequestName = "CONFIG_CREATE"
	ConfigLoad             RequestName = "CONFIG_LOAD"
	ConfigUnload           RequestName = "CONFIG_UNLOAD"
	ConfigInclude          RequestName = "CONFIG_INCLUDE"
	SettingUpdate          RequestName = "SETTING_UPDATE"
	SettingRemove          RequestName = "SETTING_REMOVE"
	SettingGet             RequestName = "SETTING_GET"
	ConfigGetSettings      RequestName = "CONFIG_GET_SETTINGS"
	ConfigGetSettingsNames RequestName = "CONFIG_GET_SETTINGS_NAMES"
	AliasSet               RequestName = "ALIAS_SET"
	AliasUnset             RequestName = "ALIAS_UNSET"
	SubscribeSetting       RequestName = "SUBSCRIBE_SETTING"
	UnsubscribeSetting     RequestName = "UNSUBSCRIBE_SETTING"
)

// State is a REQUEST_STATE value: never equal to an internal error Kind
// string, always the wire-facing vocabulary.
type State string

const (
	Success        State = "SUCCESS"
	UnknownRequest State = "UNKNOWN_REQUEST"
	UnknownID      State = "UNKNOWN_ID"
	UnknownKey     State = "UNKNOWN_KEY"
	UnknownSetting State = "UNKNOWN_SETTING"
	DBError        State = "DB_ERROR"
	InternalError  State = "INTERNAL_ERROR"
)

// SubscriptionEventType distinguishes the two kinds of unsolicited events
// fan-out delivers.
type SubscriptionEventType string

const (
	EventUpdate SubscriptionEventType = "UPDATE"
	EventDelete SubscriptionEventType = "DELETE"
)

// Request is the inbound envelope. Every field beyond RequestName is
// command-specific and optional; ConfigID and Src are zero when absent
// because the temp-id sequence starts at 1.
type Request struct {
	RequestName       RequestName       `json:"REQUEST_NAME"`
	ConfigName        string            `json:"CONFIG_NAME,omitempty"`
	ConfigKey         string            `json:"CONFIG_KEY,omitempty"`
	ReadonlyConfigKey string            `json:"READONLY_CONFIG_KEY,omitempty"`
	ConfigID          int64             `json:"CONFIG_ID,omitempty"`
	Src               int64             `json:"SRC,omitempty"`
	SettingsToUpdate  map[string]string `json:"SETTINGS_TO_UPDATE,omitempty"`
	SettingName       string            `json:"SETTING_NAME,omitempty"`
	AliasName         string            `json:"ALIAS_NAME,omitempty"`
}

// Response is the outbound reply envelope. Fields beyond RequestState are
// populated only by the handlers that produce them.
type Response struct {
	RequestState      State             `json:"REQUEST_STATE"`
	ConfigKey         string            `json:"CONFIG_KEY,omitempty"`
	ReadonlyConfigKey string            `json:"READONLY_CONFIG_KEY,omitempty"`
	ConfigName        string            `json:"CONFIG_NAME"`
	ConfigID          int64             `json:"CONFIG_ID,omitempty"`
	SettingValue      string            `json:"SETTING_VALUE"`
	Settings          map[string]string `json:"SETTINGS,omitempty"`
	SettingsNames     []string          `json:"SETTINGS_NAMES,omitempty"`
}

// SubscriptionEvent is the unsolicited message fan-out writes to a
// subscribed session's socket, interleaved with ordinary responses.
type SubscriptionEvent struct {
	ConfigID              int64                 `json:"CONFIG_ID"`
	SettingName           string                `json:"SETTING_NAME"`
	SubscriptionEventType SubscriptionEventType `json:"SUBSCRIPTION_EVENT_TYPE"`
}
