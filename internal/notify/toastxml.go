package notify

import (
	"encoding/xml"
	"strings"
)

// Windows ToastGeneric schema, restricted to the elements wintoast emits.
type toastDocument struct {
	XMLName        xml.Name    `xml:"toast"`
	ActivationType string      `xml:"activationType,attr,omitempty"`
	Launch         string      `xml:"launch,attr,omitempty"`
	Visual         toastVisual `xml:"visual"`
	Audio          *toastAudio `xml:"audio,omitempty"`
}

type toastVisual struct {
	Binding toastBinding `xml:"binding"`
}

type toastBinding struct {
	Template string       `xml:"template,attr"`
	Texts    []toastText  `xml:"text"`
	Images   []toastImage `xml:"image"`
}

type toastText struct {
	Placement string `xml:"placement,attr,omitempty"`
	Value     string `xml:",chardata"`
}

type toastImage struct {
	Placement string `xml:"placement,attr,omitempty"`
	Src       string `xml:"src,attr"`
}

type toastAudio struct {
	Silent bool `xml:"silent,attr"`
}

// toastXML renders t as a ToastGeneric document for the WinRT
// ToastNotificationManager.
func toastXML(t Toast, cfg Config) (string, error) {
	doc := toastDocument{
		Visual: toastVisual{Binding: toastBinding{
			Template: "ToastGeneric",
			Texts: []toastText{
				{Value: t.Title},
				{Value: t.Message},
			},
		}},
	}
	b := &doc.Visual.Binding

	if t.Icon != nil {
		b.Images = append(b.Images, toastImage{Placement: "appLogoOverride", Src: t.Icon.String()})
	}
	if t.HeroImage != nil {
		b.Images = append(b.Images, toastImage{Placement: "hero", Src: t.HeroImage.String()})
	}
	if t.InlineImage != nil {
		b.Images = append(b.Images, toastImage{Src: t.InlineImage.String()})
	}
	if t.Attribution != "" {
		b.Texts = append(b.Texts, toastText{Placement: "attribution", Value: t.Attribution})
	}
	if t.Activation != nil {
		doc.ActivationType = "protocol"
		doc.Launch = t.Activation.String()
	}
	if cfg.Silent {
		doc.Audio = &toastAudio{Silent: true}
	}

	out, err := xml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// powerShellScript loads toast XML and shows it under appID.
func powerShellScript(toast, appID string) string {
	return `
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null
$xml = New-Object Windows.Data.Xml.Dom.XmlDocument
$xml.LoadXml('` + escapeForPowerShell(toast) + `')
$toast = [Windows.UI.Notifications.ToastNotification]::new($xml)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('` + escapeForPowerShell(appID) + `').Show($toast)
`
}

// escapeForPowerShell escapes s for use inside a single-quoted PowerShell
// string, where only the quote itself is special.
func escapeForPowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
