package alerts

import (
	"encoding/json"
	"time"

	"preopedge/events"

	"github.com/sirupsen/logrus"
)

// Alert is the maintenance notification published to the broker.
type Alert struct {
	Site         string   `json:"site"`
	Date         string   `json:"date"`
	EmployeeName string   `json:"employee_name"`
	AssetMake    string   `json:"asset_make"`
	AssetID      string   `json:"asset_id,omitempty"`
	Condition    string   `json:"condition"`
	Action       string   `json:"action"`
	Items        []string `json:"items,omitempty"`
	Comments     string   `json:"comments,omitempty"`
	Timestamp    string   `json:"timestamp"`
}

// Notifier turns attention-flagged events into published alerts.
type Notifier struct {
	client *Client
	site   string
	topic  string
	log    *logrus.Logger
}

// NewNotifier creates a Notifier publishing to the given topic.
func NewNotifier(client *Client, site, topic string, log *logrus.Logger) *Notifier {
	return &Notifier{client: client, site: site, topic: topic, log: log}
}

// Register subscribes the notifier to attention-flagged events on the bus.
func (n *Notifier) Register(bus *events.Bus) {
	bus.SubscribeTypes(n.handle, events.TypeAttentionFlagged)
}

func (n *Notifier) handle(evt events.Event) {
	flagged, ok := evt.Payload.(events.AttentionFlaggedEvent)
	if !ok {
		return
	}
	alert := Alert{
		Site:         n.site,
		Date:         flagged.Date,
		EmployeeName: flagged.EmployeeName,
		AssetMake:    flagged.AssetMake,
		AssetID:      flagged.AssetID,
		Condition:    flagged.Condition,
		Action:       flagged.Action,
		Items:        flagged.Items,
		Comments:     flagged.Comments,
		Timestamp:    time.Now().Format(time.RFC3339),
	}
	payload, err := json.Marshal(alert)
	if err != nil {
		n.log.Errorf("marshal alert: %v", err)
		return
	}
	if err := n.client.Publish(n.topic, payload); err != nil {
		n.log.Warnf("publish alert for %s: %v", flagged.AssetMake, err)
		return
	}
	n.log.Infof("maintenance alert published for %s (%d items)", flagged.AssetMake, len(flagged.Items))
}
