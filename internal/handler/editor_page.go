package handler

import "html/template"

// editorTmpl is the builder shell. The preview iframe shows the working
// copy; the page script posts mutations and reloads the iframe on
// preview_refresh messages from the websocket.
var editorTmpl = template.Must(template.New("editor").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Редактор | Shaq</title>
<style>
body { font-family: sans-serif; margin: 0; display: flex; height: 100vh; }
.sidebar { width: 22rem; border-right: 1px solid #e5e7eb; padding: 1rem; overflow-y: auto; }
.preview { flex: 1; display: flex; align-items: center; justify-content: center; background: #f3f4f6; }
.preview iframe { border: none; background: #fff; height: 90%; }
.preview.mobile iframe { width: 24rem; }
.preview.desktop iframe { width: 95%; }
.panel-tabs { display: flex; flex-wrap: wrap; gap: 0.25rem; margin-bottom: 1rem; }
.panel-tabs button { padding: 0.35rem 0.6rem; }
.panel-tabs button.active { font-weight: bold; }
.panel { display: none; }
.panel.active { display: block; }
.topbar { display: flex; gap: 0.5rem; margin-bottom: 1rem; }
</style>
</head>
<body data-event-id="{{.EventID}}">
<div class="sidebar">
  <div class="topbar">
    <button id="save-btn">Сохранить</button>
    <button id="publish-btn">Опубликовать</button>
    <a href="/">Назад</a>
  </div>
  <div class="panel-tabs">
{{range .Panels}}    <button data-panel="{{.}}"{{if eq . $.ActivePanel}} class="active"{{end}}>{{.}}</button>
{{end}}  </div>
  <div id="panel-root"></div>
  <div class="topbar">
    <button data-mode="mobile">Телефон</button>
    <button data-mode="desktop">Экран</button>
  </div>
</div>
<div class="preview {{.PreviewMode}}" id="preview-pane">
  <iframe id="preview-frame" src="/editor/{{.EventID}}/preview"></iframe>
</div>
<script>
(function () {
  var eventID = document.body.dataset.eventId;
  var frame = document.getElementById('preview-frame');
  var pane = document.getElementById('preview-pane');

  function post(path, body) {
    return fetch('/editor/' + eventID + path, {
      method: 'POST',
      headers: { 'Content-Type': 'application/json', 'X-Requested-With': 'fetch' },
      body: body ? JSON.stringify(body) : null
    }).then(function (r) {
      if (r.status === 401) { location.href = '/login'; }
      return r.json();
    });
  }

  document.getElementById('save-btn').addEventListener('click', function () { post('/save'); });
  document.getElementById('publish-btn').addEventListener('click', function () { post('/publish'); });

  document.querySelectorAll('.panel-tabs button').forEach(function (btn) {
    btn.addEventListener('click', function () {
      document.querySelectorAll('.panel-tabs button').forEach(function (b) { b.classList.remove('active'); });
      btn.classList.add('active');
      post('/ui', { activePanel: btn.dataset.panel });
    });
  });

  document.querySelectorAll('[data-mode]').forEach(function (btn) {
    btn.addEventListener('click', function () {
      pane.className = 'preview ' + btn.dataset.mode;
      post('/ui', { previewMode: btn.dataset.mode });
    });
  });

  function connect() {
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var sock = new WebSocket(proto + location.host + '/ws/preview/' + eventID);
    sock.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type === 'preview_refresh') {
        frame.contentWindow.location.reload();
      }
    };
    sock.onclose = function () { setTimeout(connect, 2000); };
  }
  connect();
})();
</script>
</body>
</html>
`))
